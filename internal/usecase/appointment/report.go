package appointment

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbearia-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
	"github.com/BruksfildServices01/barbearia-agenda/internal/dto"
)

var reportHeader = []string{
	"id", "client_name", "client_email", "client_phone",
	"barber_id", "barber_name", "services", "total",
	"appt_date", "appt_time", "created_at", "status",
}

type ExportReportOutput struct {
	Key      string
	Location string
	Rows     int
	Summary  dto.SummaryDTO
}

// ExportReport gera um CSV com todos os agendamentos e grava no bucket de relatórios.
type ExportReport struct {
	repo             domain.Repository
	shop             shop.Config
	uploader         ReportUploader
	audit            AuditSink
	includeCancelled bool
	now              nowFunc
}

func NewExportReport(
	repo domain.Repository,
	cfg shop.Config,
	uploader ReportUploader,
	audit AuditSink,
	includeCancelled bool,
) *ExportReport {
	return &ExportReport{
		repo:             repo,
		shop:             cfg,
		uploader:         uploader,
		audit:            audit,
		includeCancelled: includeCancelled,
		now:              time.Now,
	}
}

func (uc *ExportReport) WithNow(now func() time.Time) *ExportReport {
	uc.now = now
	return uc
}

func (uc *ExportReport) Execute(
	ctx context.Context,
	actor string,
	requestID string,
) (*ExportReportOutput, error) {

	appointments, err := uc.repo.ListAppointments(ctx, domain.ListFilter{})
	if err != nil {
		return nil, err
	}

	rows := dto.NewAppointmentDTOs(appointments, uc.shop)
	body, err := encodeReport(rows)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	now := uc.now().UTC()
	key := fmt.Sprintf("reports/%s/%s.csv", now.Format(shop.DateLayout), uuid.NewString())

	location, err := uc.uploader.Upload(ctx, key, body, "text/csv")
	if err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:     actor,
		RequestID: requestID,
		Action:    "report_exported",
		Entity:    "report",
		Metadata: map[string]any{
			"key":  key,
			"rows": len(rows),
		},
	})

	return &ExportReportOutput{
		Key:      key,
		Location: location,
		Rows:     len(rows),
		Summary:  dto.NewSummaryDTO(domain.Aggregate(appointments, uc.includeCancelled), uc.shop),
	}, nil
}

func encodeReport(rows []dto.AppointmentDTO) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeader); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.ClientName,
			deref(r.ClientEmail),
			deref(r.ClientPhone),
			strconv.FormatUint(uint64(r.BarberID), 10),
			r.BarberName,
			domain.JoinServices(r.Services),
			strconv.FormatFloat(r.Total, 'f', 2, 64),
			r.Date,
			r.Time,
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
