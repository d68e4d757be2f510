package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"carcheck/internal/core/application/usecases/commands"
	"carcheck/internal/core/domain/model/kernel"
	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/core/domain/services"
	"carcheck/internal/core/ports"
	"carcheck/internal/pkg/metrics"
	"carcheck/internal/pkg/sendqueue"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByClientEmail(ctx context.Context, email string) (*order.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// fakeSender records outbound messages and fails those addressed to failTo.
type fakeSender struct {
	sent   []string
	failTo string
}

func (s *fakeSender) Send(_ context.Context, to, _, _ string) (string, error) {
	s.sent = append(s.sent, to)
	if to == s.failTo {
		return "", context.DeadlineExceeded
	}
	return "msg-1", nil
}

// fakeGenerator is a canned text generator for report synthesis.
type fakeGenerator struct {
	text string
	err  error
}

func (g *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	return g.text, g.err
}

const testInspectorAddress = "inspections@carcheck.example"

func newTestDispatcher(sender sendqueue.Sender) services.NotificationDispatcher {
	logger := slog.New(slog.DiscardHandler)
	return services.NewNotificationDispatcher(
		sendqueue.New(sender, 0, 0, logger), testInspectorAddress, logger)
}

func newTestPipeline(t *testing.T) *metrics.Pipeline {
	t.Helper()
	return metrics.NewPipeline(prometheus.NewRegistry())
}

func testBookingCommand(t *testing.T) commands.CreateBookingCommand {
	t.Helper()
	cmd, err := commands.NewCreateBookingCommand(
		order.PersonalInfo{FullName: "Jane Roe", Email: "jane@example.com", Phone: "+1 555 0101"},
		order.VehicleInfo{
			Make: "Toyota", Model: "Corolla", Year: "2018",
			AppointmentDate: "2026-09-15", AppointmentTime: "10:00",
		},
		order.SellerInfo{Name: "Sam Seller"},
		order.SelectedPackage{ID: "full", Name: "Full Inspection", Price: 149.99},
	)
	if err != nil {
		t.Fatalf("building booking command: %v", err)
	}
	return cmd
}
