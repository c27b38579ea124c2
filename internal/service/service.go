package service

import (
	fluentdRepo "talentsync/internal/database/fluentd/repository"
	mongoRepo "talentsync/internal/database/mongodb/repository"
	redisRepo "talentsync/internal/database/redis/repository"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTaxonomy,
	NewHealthService,
	NewOrganizationService,
	NewEmployeeService,
	NewScheduleService,
	NewBoardService,
	NewQuotaService,
	wire.Bind(new(EmployeeStore), new(*mongoRepo.EmployeeRepository)),
	wire.Bind(new(ScheduleStore), new(*mongoRepo.ScheduleRepository)),
	wire.Bind(new(OrganizationStore), new(*mongoRepo.OrganizationRepository)),
	wire.Bind(new(ScheduleCache), new(*redisRepo.ScheduleCacheRepository)),
	wire.Bind(new(MutationQuotaStore), new(*redisRepo.MutationQuotaRepository)),
	wire.Bind(new(AuditLogger), new(*fluentdRepo.LogRepository)),
)
