package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/config"
	"tribunal_app_go/db"
	"tribunal_app_go/middleware"
	"tribunal_app_go/models"
	"tribunal_app_go/services"

	"github.com/labstack/echo/v4"
)

type recordOrderRequest struct {
	IssueDate    time.Time            `json:"issue_date"`
	HearingDate  *time.Time           `json:"hearing_date"`
	Keyword      *string              `json:"keyword"`
	AppForLeave  bool                 `json:"app_for_leave"`
	LeaveGranted bool                 `json:"leave_granted"`
	DocumentURL  *string              `json:"document_url"`
	IsPublic     *bool                `json:"is_public"`
	Subjects     models.OrderSubjects `json:"subjects"`
}

// RecordOrderHandler issues a tribunal order against an appeal.
func RecordOrderHandler(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req recordOrderRequest
		if err := c.Bind(&req); err != nil {
			return apperr.Validation("invalid request body")
		}

		// Orders are public unless the request says otherwise.
		isPublic := true
		if req.IsPublic != nil {
			isPublic = *req.IsPublic
		}

		order, err := services.RecordOrder(db.DB, middleware.AuditContextFrom(c), c.Param("id"), services.RecordOrderInput{
			IssueDate:    req.IssueDate,
			HearingDate:  req.HearingDate,
			Keyword:      req.Keyword,
			AppForLeave:  req.AppForLeave,
			LeaveGranted: req.LeaveGranted,
			DocumentURL:  req.DocumentURL,
			IsPublic:     isPublic,
			Subjects:     req.Subjects,
		})
		if err != nil {
			return err
		}

		services.SendOrderNotices(db.DB, cfg, order.AppealID, order)

		return respondData(c, http.StatusCreated, order)
	}
}

// GetOrderHandler returns a single order with its subject flags.
func GetOrderHandler(c echo.Context) error {
	order, err := services.GetOrder(db.DB, c.Param("orderId"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, order)
}

// ListOrdersHandler returns all orders on an appeal.
func ListOrdersHandler(c echo.Context) error {
	orders, err := services.ListOrders(db.DB, c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, orders)
}

type updateOrderRequest struct {
	Keyword      *string `json:"keyword"`
	AppForLeave  *bool   `json:"app_for_leave"`
	LeaveGranted *bool   `json:"leave_granted"`
	DocumentURL  *string `json:"document_url"`
	IsPublic     *bool   `json:"is_public"`
}

// UpdateOrderHandler amends an order's metadata.
func UpdateOrderHandler(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	order, err := services.UpdateOrder(db.DB, middleware.AuditContextFrom(c), c.Param("orderId"), services.UpdateOrderInput{
		Keyword:      req.Keyword,
		AppForLeave:  req.AppForLeave,
		LeaveGranted: req.LeaveGranted,
		DocumentURL:  req.DocumentURL,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, order)
}

// SearchDecisionsHandler is the public decision registry search. No auth.
func SearchDecisionsHandler(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}
	year, _ := strconv.Atoi(c.QueryParam("year"))
	filters := services.DecisionFilters{
		Keyword:    c.QueryParam("keyword"),
		Subject:    c.QueryParam("subject"),
		Settlement: c.QueryParam("settlement"),
		IssueType:  c.QueryParam("issue_type"),
		Year:       year,
		Page:       page,
		Limit:      limit,
	}
	if from := c.QueryParam("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return apperr.Validation("from must be YYYY-MM-DD")
		}
		filters.FromDate = &t
	}
	if to := c.QueryParam("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return apperr.Validation("to must be YYYY-MM-DD")
		}
		filters.ToDate = &t
	}

	orders, total, err := services.SearchPublicDecisions(db.DB, filters)
	if err != nil {
		return err
	}
	return respondList(c, orders, total, filters.Page, filters.Limit)
}
