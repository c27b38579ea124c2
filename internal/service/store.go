package service

import (
	"context"
	"time"

	fluentdModel "talentsync/internal/database/fluentd/model"
	"talentsync/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 以下介面由 database 套件的 repository 實作，測試時以 in-memory 版本替換

type EmployeeStore interface {
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	CreateMany(ctx context.Context, employees []*model.Employee) ([]*model.Employee, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error)
	ListByOrg(ctx context.Context, orgID primitive.ObjectID) ([]*model.Employee, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type ScheduleStore interface {
	Create(ctx context.Context, schedule *model.Schedule) (*model.Schedule, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Schedule, error)
	ListRange(ctx context.Context, orgID primitive.ObjectID, from, to time.Time) ([]*model.Schedule, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type OrganizationStore interface {
	Create(ctx context.Context, organization *model.Organization) (*model.Organization, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Organization, error)
	List(ctx context.Context) ([]*model.Organization, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (int64, error)
}

// ScheduleCache 當天排班列表快取；未啟用時 Get 永遠 miss。
// Set 帶入讀 DB 前取得的版本號，版本號已變時不寫入
type ScheduleCache interface {
	Get(ctx context.Context, orgID, day string) ([]*model.Schedule, bool, error)
	Generation(ctx context.Context, orgID, day string) (int64, error)
	Set(ctx context.Context, orgID, day string, generation int64, schedules []*model.Schedule) error
	Invalidate(ctx context.Context, orgID string, days ...string) error
}

type AuditLogger interface {
	LogAudit(ctx context.Context, audit fluentdModel.AuditLog) error
}
