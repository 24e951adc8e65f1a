package core

import (
	"context"
	"fmt"

	"anthromorph/pkg/olog"
)

// Service exposes the deterministic mapping engine behind one instrumented
// facade. Every operation is a stateless pure function over the injected
// read-only taxonomy; the service adds metrics, tracing, audit, and debug
// logging around each call. Concurrent use needs no coordination.
type Service struct {
	tax     *olog.Taxonomy
	logger  Logger
	clock   Clock
	metrics MetricsRecorder
	tracer  Tracer
	audit   AuditRecorder
}

// NewService constructs a service over a validated taxonomy handle.
func NewService(tax *olog.Taxonomy, opts ...Option) *Service {
	s := &Service{
		tax:     tax,
		logger:  noopLogger{},
		clock:   ClockFunc(nil),
		metrics: noopMetrics{},
		tracer:  noopTracer{},
		audit:   noopAudit{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Taxonomy returns the read-only taxonomy handle the service operates on.
func (s *Service) Taxonomy() *olog.Taxonomy { return s.tax }

// instrument wraps one engine call with a trace span, a metrics
// observation, an audit entry, and a debug log line.
func (s *Service) instrument(ctx context.Context, operation, subject string, fn func() error) error {
	started := s.clock.Now()
	ctx, span := s.tracer.Start(ctx, operation)
	err := fn()
	span.End(err)
	duration := s.clock.Now().Sub(started)

	entry := AuditEntry{
		Operation:  operation,
		Subject:    subject,
		Status:     AuditStatusSuccess,
		Duration:   duration,
		OccurredAt: started,
	}
	if err != nil {
		entry.Status = AuditStatusError
		entry.Error = err.Error()
	}
	s.metrics.Observe(ctx, operation, err == nil, duration)
	s.audit.Record(ctx, entry)
	s.logger.Debug("engine operation",
		"operation", operation,
		"subject", subject,
		"status", string(entry.Status),
		"duration", duration.String(),
	)
	return err
}

// ResolveMovement maps a shape/cilia pair to its movement identity.
func (s *Service) ResolveMovement(ctx context.Context, shape olog.Shape, cilia olog.CiliaPattern) (MovementRecord, error) {
	var record MovementRecord
	err := s.instrument(ctx, "resolve_movement", fmt.Sprintf("%s+%s", shape, cilia), func() error {
		var err error
		record, err = ResolveMovement(s.tax, shape, cilia)
		return err
	})
	return record, err
}

// ResolveMorphotype assembles the visual specification of one morphotype.
func (s *Service) ResolveMorphotype(ctx context.Context, m olog.Morphotype) (MorphotypeSpec, error) {
	var spec MorphotypeSpec
	err := s.instrument(ctx, "resolve_morphotype", string(m), func() error {
		var err error
		spec, err = ResolveMorphotype(s.tax, m)
		return err
	})
	return spec, err
}

// ResolveSizeEffect reads the behavioral tendency of one body size.
// Out-of-range sizes carry a warning on the record, never an error.
func (s *Service) ResolveSizeEffect(ctx context.Context, size float64) SizeEffect {
	var effect SizeEffect
	_ = s.instrument(ctx, "resolve_size_effect", formatSize(size), func() error {
		effect = ResolveSizeEffect(s.tax, size)
		return nil
	})
	return effect
}

// GenerateSequence builds a validated life-cycle progression.
func (s *Service) GenerateSequence(ctx context.Context, m olog.Morphotype, start, end string, matureSize float64) (Sequence, error) {
	var seq Sequence
	err := s.instrument(ctx, "generate_sequence", string(m), func() error {
		var err error
		seq, err = GenerateSequence(s.tax, m, start, end, matureSize)
		return err
	})
	return seq, err
}

// ComposeSwarm distributes a population into one deterministic swarm
// record.
func (s *Service) ComposeSwarm(ctx context.Context, count int, mix map[olog.Morphotype]float64, behavior olog.Behavior, imagingStyle string) (SwarmSpec, error) {
	var spec SwarmSpec
	err := s.instrument(ctx, "compose_swarm", string(behavior), func() error {
		var err error
		spec, err = ComposeSwarm(s.tax, count, mix, behavior, imagingStyle)
		return err
	})
	return spec, err
}

// GenerateVisualization composes the aggregate visual-parameter record for
// one subject.
func (s *Service) GenerateVisualization(ctx context.Context, m olog.Morphotype, size float64, lifeStage, imagingStyle string) (VisualizationSpec, error) {
	var spec VisualizationSpec
	err := s.instrument(ctx, "generate_visualization", string(m), func() error {
		var err error
		spec, err = GenerateVisualization(s.tax, m, size, lifeStage, imagingStyle)
		return err
	})
	return spec, err
}

// WoundHealingScenario returns the fixed wound-healing bridge record.
func (s *Service) WoundHealingScenario(ctx context.Context) WoundScenario {
	var scenario WoundScenario
	_ = s.instrument(ctx, "wound_healing_scenario", "", func() error {
		scenario = WoundHealingScenario()
		return nil
	})
	return scenario
}
