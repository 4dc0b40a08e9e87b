package permit

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"portico/internal/shared/biztime"
	"portico/internal/shared/errors"
	"portico/internal/shared/utils"
)

type CreatePermitRequest struct {
	PermissionType string     `json:"permission_type" binding:"required,oneof=visit maintenance"`
	Description    string     `json:"description" binding:"max=500"`
	ValidFrom      *time.Time `json:"valid_from"`
	ValidUntil     *time.Time `json:"valid_until"`
	VisitID        uint       `json:"visit_id" binding:"required"`
	ResidentID     uint       `json:"resident_id" binding:"required"`
	OrderID        *uint      `json:"order_id"`
}

type UpdatePermitRequest struct {
	Description    *string    `json:"description" binding:"omitempty,max=500"`
	PermissionType *string    `json:"permission_type" binding:"omitempty,oneof=visit maintenance"`
	ValidFrom      *time.Time `json:"valid_from"`
	ValidUntil     *time.Time `json:"valid_until"`
	EntryTime      *time.Time `json:"entry_time"`
	DepartureTime  *time.Time `json:"departure_time"`
	OrderID        *uint      `json:"order_id"`
}

type listPermitsParams struct {
	ResidentID     *uint
	VisitID        *uint
	OrderID        *uint
	PermissionType *string
	Status         *string
	Lifecycle      *string
	From           *time.Time
	To             *time.Time
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}

func parsePermitID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid permit ID")
	}
	return uint(id), nil
}

func parseListPermitsParams(c *gin.Context) (*listPermitsParams, error) {
	params := &listPermitsParams{}

	pagination := utils.ParsePagination(c)
	params.Page = pagination.Page
	params.PageSize = pagination.PageSize

	var err error
	if params.ResidentID, err = parseQueryUint(c, "resident_id"); err != nil {
		return nil, err
	}
	if params.VisitID, err = parseQueryUint(c, "visit_id"); err != nil {
		return nil, err
	}
	if params.OrderID, err = parseQueryUint(c, "order_id"); err != nil {
		return nil, err
	}

	if v := c.Query("permission_type"); v != "" {
		params.PermissionType = &v
	}
	if v := c.Query("status"); v != "" {
		params.Status = &v
	}
	if v := c.Query("lifecycle"); v != "" {
		params.Lifecycle = &v
	}

	// Date filters are interpreted in the community's local timezone.
	if v := c.Query("from"); v != "" {
		day, err := biztime.ParseDateInBizTimezone(v)
		if err != nil {
			return nil, errors.NewValidationError("invalid from date, expected YYYY-MM-DD")
		}
		from := biztime.StartOfDayUTC(day)
		params.From = &from
	}
	if v := c.Query("to"); v != "" {
		day, err := biztime.ParseDateInBizTimezone(v)
		if err != nil {
			return nil, errors.NewValidationError("invalid to date, expected YYYY-MM-DD")
		}
		to := biztime.EndOfDayUTC(day)
		params.To = &to
	}

	params.SortBy = c.DefaultQuery("sort_by", "created_at")
	params.SortOrder = c.DefaultQuery("sort_order", "desc")

	return params, nil
}

func parseQueryUint(c *gin.Context, key string) (*uint, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + key + " parameter")
	}
	u := uint(parsed)
	return &u, nil
}
