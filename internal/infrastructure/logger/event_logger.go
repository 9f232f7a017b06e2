package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Audit events for the allocation paths that degrade instead of failing:
// checkout fallbacks and blocked finalizations both need a durable trail.

type ChannelFallbackEvent struct {
	ID               uint `gorm:"primaryKey"`
	OrderLineID      string
	ProductVariantID string
	ChannelID        string
	Reason           string
	Timestamp        time.Time
}

type FinalizationBlockedEvent struct {
	ID               uint `gorm:"primaryKey"`
	SubOrderID       string
	AggregateOrderID string
	ChannelID        string
	Reason           string
	Timestamp        time.Time
}

type AllocationEventLogger interface {
	LogChannelFallback(ctx context.Context, event ChannelFallbackEvent) error
	LogFinalizationBlocked(ctx context.Context, event FinalizationBlockedEvent) error
}

type PGAllocationEventLogger struct {
	db *gorm.DB
}

func NewPGAllocationEventLogger(db *gorm.DB) *PGAllocationEventLogger {
	db.AutoMigrate(&ChannelFallbackEvent{}, &FinalizationBlockedEvent{})
	return &PGAllocationEventLogger{db: db}
}

func (l *PGAllocationEventLogger) LogChannelFallback(ctx context.Context, event ChannelFallbackEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGAllocationEventLogger) LogFinalizationBlocked(ctx context.Context, event FinalizationBlockedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
