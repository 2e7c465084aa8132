package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbearia-agenda/internal/audit"
)

// AuditSink recebe eventos de auditoria sem bloquear o use case.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

// ReportUploader grava o relatório exportado e devolve onde ele ficou.
type ReportUploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type nowFunc func() time.Time
