package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lielsontattoo/studio-backend/internal/events"
	"github.com/lielsontattoo/studio-backend/internal/modules/config"
	"github.com/lielsontattoo/studio-backend/internal/modules/coupon"
)

// Service defines the order business logic.
type Service interface {
	// Checkout validates the cart, applies the coupon and the delivery
	// fee, and persists the order as PENDING.
	Checkout(ctx context.Context, req CheckoutRequest) (*Order, error)

	// GetOrder retrieves a full order with its items.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// ListOrders returns orders, optionally filtered by status.
	ListOrders(ctx context.Context, status string) ([]*Order, error)

	// UpdateStatus advances an order. The first move into CONFIRMED
	// decrements stock; re-confirming does not.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)

	// CancelOrder cancels a PENDING or CONFIRMED order.
	CancelOrder(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	coupons    coupon.Service
	configRepo config.Repository
	hub        *events.Hub
}

// NewService creates a new order service.
func NewService(repo Repository, coupons coupon.Service, configRepo config.Repository, hub *events.Hub) Service {
	return &service{repo: repo, coupons: coupons, configRepo: configRepo, hub: hub}
}

// validTransitions defines the allowed status state machine. DELIVERED is
// additionally gated on the delivery flag: pickup orders are never delivered.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	if req.CustomerName == "" || req.Phone == "" {
		return nil, fmt.Errorf("customer_name and phone are required")
	}

	method := PaymentMethod(strings.ToLower(req.PaymentMethod))
	switch method {
	case PaymentMoney, PaymentCard, PaymentPix:
	default:
		return nil, fmt.Errorf("invalid payment_method %q", req.PaymentMethod)
	}

	if req.Delivery {
		if req.Address == nil || req.Address.Street == "" || req.Address.Neighborhood == "" {
			return nil, fmt.Errorf("delivery orders require street and neighborhood")
		}
	}

	// ── Build item snapshots, validate stock ──────────────────────────────
	var items []*OrderItem
	var subtotal float64
	for _, ci := range req.Items {
		if ci.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be > 0 for product %s", ci.ProductID)
		}
		pid, err := uuid.Parse(ci.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product_id: %w", err)
		}
		name, price, stock, err := s.repo.GetProductForSale(ctx, ci.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found", ci.ProductID)
		}
		if ci.Quantity > stock {
			return nil, fmt.Errorf("only %d of %s in stock", stock, name)
		}
		lineTotal := price * float64(ci.Quantity)
		subtotal += lineTotal
		items = append(items, &OrderItem{
			ID:        uuid.New(),
			ProductID: pid,
			Name:      name,
			Price:     price,
			Quantity:  ci.Quantity,
			LineTotal: lineTotal,
		})
	}

	// ── Coupon ────────────────────────────────────────────────────────────
	var discount float64
	var couponCode string
	if req.CouponCode != "" {
		resp, err := s.coupons.Validate(ctx, coupon.ValidateRequest{Code: req.CouponCode, Subtotal: subtotal})
		if err != nil {
			return nil, fmt.Errorf("validate coupon: %w", err)
		}
		if !resp.Valid {
			return nil, fmt.Errorf("invalid or inactive coupon %q", req.CouponCode)
		}
		discount = resp.Discount
		couponCode = resp.Code
	}

	// ── Delivery fee ──────────────────────────────────────────────────────
	var fee float64
	var addr *Address
	if req.Delivery {
		conf, err := s.configRepo.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("load studio config: %w", err)
		}
		fee = conf.DeliveryFee
		addr = req.Address
	}

	var changeFor *float64
	if method == PaymentMoney {
		changeFor = req.ChangeFor
	}

	o := &Order{
		ID:            uuid.New(),
		Items:         items,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Delivery:      req.Delivery,
		DeliveryFee:   fee,
		Address:       addr,
		PaymentMethod: method,
		ChangeFor:     changeFor,
		Subtotal:      round2(subtotal),
		Discount:      round2(discount),
		Total:         round2(subtotal - discount + fee),
		CouponCode:    couponCode,
		Status:        StatusPending,
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	s.hub.Publish(events.TopicOrders, "created", o)
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context, status string) ([]*Order, error) {
	return s.repo.ListOrders(ctx, status)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	newStatus := OrderStatus(strings.ToUpper(req.Status))
	if newStatus == o.Status {
		return o, nil
	}
	allowed := false
	for _, next := range validTransitions[o.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, newStatus)
	}
	if newStatus == StatusDelivered && !o.Delivery {
		return nil, fmt.Errorf("pickup orders cannot be marked DELIVERED")
	}

	if newStatus == StatusConfirmed {
		if _, err := s.repo.ConfirmOrder(ctx, id); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
			return nil, err
		}
	}
	o.Status = newStatus
	s.hub.Publish(events.TopicOrders, "updated", o)
	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, id string) error {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return fmt.Errorf("order not found: %w", err)
	}
	if o.Status != StatusPending && o.Status != StatusConfirmed {
		return fmt.Errorf("only PENDING or CONFIRMED orders can be cancelled (current: %s)", o.Status)
	}
	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}
	o.Status = StatusCancelled
	s.hub.Publish(events.TopicOrders, "updated", o)
	return nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
