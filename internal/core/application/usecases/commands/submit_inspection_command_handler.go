package commands

import (
	"context"
	"log/slog"

	"carcheck/internal/core/domain/model/checklist"
	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/core/domain/services"
	"carcheck/internal/core/ports"
	"carcheck/internal/pkg/errs"
	"carcheck/internal/pkg/metrics"
)

// SubmitInspectionResult is the outcome of a persisted submission.
type SubmitInspectionResult struct {
	Status          order.Status
	ProgressPercent int

	// ReportSource is set only when the submission finalized the order.
	ReportSource services.ReportSource

	// Notifications is populated only when the submission finalized the
	// order; progress saves send nothing.
	Notifications services.DispatchResult
}

// SubmitInspectionCommandHandler runs the submission pipeline: load the
// order, check completeness, then either save progress or complete the
// order with a synthesized report. A finalizing submission with missing
// points fails the whole command; nothing is persisted and the order keeps
// its previous state. Report-ready notifications go out only after the
// completed order has been committed.
type SubmitInspectionCommandHandler struct {
	uowFactory  OrderUoWFactory
	catalog     checklist.Catalog
	validator   services.InspectionValidator
	synthesizer services.ReportSynthesizer
	dispatcher  services.NotificationDispatcher
	pipeline    *metrics.Pipeline
	logger      *slog.Logger
}

// NewSubmitInspectionCommandHandler creates a handler for inspection
// submissions against the given checklist catalog.
func NewSubmitInspectionCommandHandler(
	uowFactory OrderUoWFactory,
	catalog checklist.Catalog,
	validator services.InspectionValidator,
	synthesizer services.ReportSynthesizer,
	dispatcher services.NotificationDispatcher,
	pipeline *metrics.Pipeline,
	logger *slog.Logger,
) SubmitInspectionCommandHandler {
	return SubmitInspectionCommandHandler{
		uowFactory:  uowFactory,
		catalog:     catalog,
		validator:   validator,
		synthesizer: synthesizer,
		dispatcher:  dispatcher,
		pipeline:    pipeline,
		logger:      logger.With("component", "submit_inspection_handler"),
	}
}

// Handle processes the submission command.
func (h *SubmitInspectionCommandHandler) Handle(ctx context.Context, cmd SubmitInspectionCommand) (SubmitInspectionResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitInspectionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitInspectionResult{}, errs.NewPersistenceError("begin submission transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.Number())
	if err != nil {
		return SubmitInspectionResult{}, err
	}

	// An unknown order outranks an incomplete checklist, so completeness is
	// checked only after the load succeeds. The rejection leaves the order
	// untouched: the transaction is rolled back by the deferred call.
	validation := h.validator.Validate(h.catalog, cmd.Results())
	if cmd.Finalize() && !validation.Complete {
		return SubmitInspectionResult{}, errs.NewChecklistIncompleteError(validation.Missing)
	}

	if !cmd.Finalize() {
		if err = aggregate.SaveProgress(cmd.Results(), cmd.Observations()); err != nil {
			return SubmitInspectionResult{}, err
		}

		if err = h.persist(ctx, uow, repo, aggregate); err != nil {
			return SubmitInspectionResult{}, err
		}

		h.logger.InfoContext(ctx, "inspection progress saved",
			"order_number", cmd.Number().String(),
			"progress_percent", validation.ProgressPercent)

		return SubmitInspectionResult{
			Status:          aggregate.Status(),
			ProgressPercent: validation.ProgressPercent,
		}, nil
	}

	report, source := h.synthesizer.Synthesize(ctx,
		aggregate.PersonalInfo(), aggregate.VehicleInfo(),
		h.catalog, cmd.Results(), cmd.Observations())

	if err = aggregate.Complete(cmd.Results(), cmd.Observations(), report); err != nil {
		return SubmitInspectionResult{}, err
	}

	if err = h.persist(ctx, uow, repo, aggregate); err != nil {
		return SubmitInspectionResult{}, err
	}

	h.pipeline.InspectionCompleted()
	h.pipeline.ReportGenerated(string(source))
	h.logger.InfoContext(ctx, "inspection completed",
		"order_number", cmd.Number().String(), "report_source", string(source))

	dispatched := h.dispatcher.Dispatch(ctx, aggregate, services.EventReportReady)
	h.pipeline.NotificationSent("customer", dispatched.CustomerSent)
	h.pipeline.NotificationSent("inspector", dispatched.InspectorSent)

	return SubmitInspectionResult{
		Status:          aggregate.Status(),
		ProgressPercent: validation.ProgressPercent,
		ReportSource:    source,
		Notifications:   dispatched,
	}, nil
}

func (h *SubmitInspectionCommandHandler) persist(ctx context.Context, uow OrderUoW, repo ports.OrderRepository, aggregate *order.Order) error {
	if err := repo.Update(ctx, aggregate); err != nil {
		return errs.NewPersistenceError("update order", err)
	}
	if err := uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit submission", err)
	}
	return nil
}
