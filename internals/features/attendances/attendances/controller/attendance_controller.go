package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/attendances/attendances/dto"
	"gerejaku_backend/internals/features/attendances/attendances/service"
	helper "gerejaku_backend/internals/helpers"
)

type AttendanceController struct {
	recorder *service.RecordingService
	reports  *service.ReportService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		recorder: service.NewRecordingService(db),
		reports:  service.NewReportService(db),
	}
}

// WithClock mengganti sumber waktu (dipakai test).
func (ctrl *AttendanceController) WithClock(now func() time.Time) *AttendanceController {
	ctrl.recorder.Now = now
	ctrl.reports.Now = now
	return ctrl
}

// 🟢 POST /api/attendances
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.JsonBindError(c, err)
	}

	attendees := make([]service.Attendee, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		att := service.Attendee{Name: a.Name, IsNew: a.IsNewCongregation}
		if a.CongregationID != nil && *a.CongregationID != "" {
			id, err := uuid.Parse(*a.CongregationID)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "congregationId tidak valid")
			}
			att.CongregationID = &id
		}
		attendees = append(attendees, att)
	}

	rows, err := ctrl.recorder.Record(c.UserContext(), attendees)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Absensi berhasil dicatat", dto.FromModels(rows))
}

// 🔍 GET /api/attendances
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	rows, err := ctrl.reports.List(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Daftar absensi berhasil diambil", dto.FromModels(rows))
}

// 🔍 GET /api/attendances/sunday
func (ctrl *AttendanceController) Sunday(c *fiber.Ctx) error {
	snap, err := ctrl.reports.Sunday(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Absensi hari Minggu berhasil diambil", snap)
}

// 🔍 GET /api/attendances/monthly
func (ctrl *AttendanceController) Monthly(c *fiber.Ctx) error {
	rep, err := ctrl.reports.Monthly(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Rekap bulanan berhasil diambil", rep)
}

// 🔍 GET /api/attendances/yearly
func (ctrl *AttendanceController) Yearly(c *fiber.Ctx) error {
	rep, err := ctrl.reports.Yearly(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Rekap tahunan berhasil diambil", rep)
}

// 🔍 GET /api/attendances/:congregation_id
func (ctrl *AttendanceController) History(c *fiber.Ctx) error {
	id, err := parseCongregationID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctrl.reports.History(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Riwayat absensi berhasil diambil", dto.FromModels(rows))
}

// 🔍 GET /api/attendances/:congregation_id/summary
func (ctrl *AttendanceController) Summary(c *fiber.Ctx) error {
	id, err := parseCongregationID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sum, err := ctrl.reports.MemberSummary(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Ringkasan kehadiran berhasil diambil", sum)
}

func parseCongregationID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("congregation_id"))
	if err != nil {
		return uuid.Nil, service.ErrCongregationNotFound
	}
	return id, nil
}
