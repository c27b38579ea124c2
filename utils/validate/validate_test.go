package validate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"talentsync/internal/dto"
	cErr "talentsync/internal/pkg/error"
	"talentsync/pkg/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(scheduling.DefaultTaxonomy()); err != nil {
		panic(err)
	}
}

func TestRegisteredRules(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v, scheduling.DefaultTaxonomy()))

	type sample struct {
		Shift string `validate:"shift"`
		Role  string `validate:"role"`
		Leave string `validate:"leavefilter"`
	}
	assert.NoError(t, v.Struct(sample{Shift: "morning", Role: "RA", Leave: string(scheduling.LeaveAll)}))

	err := v.Struct(sample{Shift: "brunch", Role: "CEO", Leave: "sometimes"})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	tags := []string{}
	for _, fe := range errs {
		tags = append(tags, fe.Tag())
	}
	assert.ElementsMatch(t, []string{"shift", "role", "leavefilter"}, tags)
}

func TestBindBodyCustomMessage(t *testing.T) {
	var req dto.CreateScheduleDto
	cause, respErr := BindBody([]byte(`{"orgId":"o","employee_id":"e","date":"2024-05-01","shift":"brunch","location":"Third_floor"}`), &req)
	require.Error(t, cause)

	var appErr *cErr.Error
	require.ErrorAs(t, respErr, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HttpCode())
	assert.Equal(t, "shift must be one of the configured shifts", appErr.ErrorDesc())
}

func TestBindBodySlice(t *testing.T) {
	var batch []*dto.CreateEmployeeDto
	cause, respErr := BindBody([]byte(`[{"name":""}]`), &batch)
	require.Error(t, cause)
	require.Error(t, respErr)
	assert.Contains(t, respErr.(*cErr.Error).ErrorDesc(), "Validation error")

	cause, respErr = BindBody([]byte(`not json`), &batch)
	assert.Error(t, cause)
	assert.Error(t, respErr)
}

func TestValidationErrorResponseNamesJSONField(t *testing.T) {
	type payload struct {
		StartDate string `json:"start_date" binding:"required"`
	}
	var p payload
	_, respErr := BindBody([]byte(`{}`), &p)
	require.Error(t, respErr)
	desc := respErr.(*cErr.Error).ErrorDesc()
	assert.Contains(t, desc, `Field "start_date"`)
	assert.Contains(t, desc, "'required'")
}

func TestParseObjectIDAndIntQuery(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?days=3&bad=x", nil)
	c.Params = gin.Params{{Key: "orgID", Value: "665f1f77bcf86cd799439011"}, {Key: "other", Value: "zzz"}}

	id, cause, respErr := ParseObjectID(c, "orgID")
	require.NoError(t, cause)
	require.NoError(t, respErr)
	assert.Equal(t, "665f1f77bcf86cd799439011", id.Hex())

	_, cause, respErr = ParseObjectID(c, "other")
	assert.Error(t, cause)
	assert.Equal(t, cErr.BAD_REQUEST_PARAMS, respErr.(*cErr.Error).ErrorCode())

	days, err := GetIntQuery(c, "days", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, days)
	days, err = GetIntQuery(c, "missing", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, days)
	_, err = GetIntQuery(c, "bad", 1)
	assert.Error(t, err)
}
