package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"content-hub/internal/calendar"
	"content-hub/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CalendarHandler struct {
	posts  *service.PostService
	sheets *service.SpreadsheetService
}

func NewCalendarHandler(posts *service.PostService, sheets *service.SpreadsheetService) *CalendarHandler {
	return &CalendarHandler{posts: posts, sheets: sheets}
}

// monthParam reads ?month=YYYY-MM, defaulting to the current month.
func monthParam(c *gin.Context) (time.Time, error) {
	m := c.Query("month")
	if m == "" {
		return calendar.MonthStart(time.Now()), nil
	}
	ref, err := calendar.ParseMonth(m)
	if err != nil {
		return time.Time{}, service.ErrBadDate
	}
	return ref, nil
}

// GET /api/calendar?month=YYYY-MM
func (h *CalendarHandler) Month(c *gin.Context) {
	ref, err := monthParam(c)
	if err != nil {
		fail(c, err)
		return
	}
	grid, err := h.posts.Month(c.Request.Context(), ref)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"grid": grid,
		"prev": calendar.PrevMonth(ref).Format(calendar.MonthLayout),
		"next": calendar.NextMonth(ref).Format(calendar.MonthLayout),
	})
}

// GET /api/calendar/export?month=YYYY-MM
func (h *CalendarHandler) Export(c *gin.Context) {
	ref, err := monthParam(c)
	if err != nil {
		fail(c, err)
		return
	}
	var buf bytes.Buffer
	if err := h.sheets.Export(c.Request.Context(), ref, &buf); err != nil {
		fail(c, err)
		return
	}
	name := fmt.Sprintf("content-calendar-%s.xlsx", ref.Format(calendar.MonthLayout))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GET /api/special-days
func (h *CalendarHandler) SpecialDays(c *gin.Context) {
	days := h.posts.SpecialDays()
	c.JSON(http.StatusOK, gin.H{
		"days":        days.All(),
		"suggestions": days.MarqueeSuggestions(),
	})
}
