package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
	"github.com/pattarad/rankha-pos/pkg/pagination"
	"gorm.io/gorm"
)

// CustomerService handles customer and debt operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name  string
	Phone *string
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name  *string
	Phone *string
}

// CreateCustomer creates a new customer with zero debt
func (s *CustomerService) CreateCustomer(ctx context.Context, shopID uuid.UUID, input *CreateCustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError("Customer name is required")
	}

	customer := &entity.Customer{
		ShopID: shopID,
		Name:   name,
		Phone:  input.Phone,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, shopID, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomer updates name and phone. Debt is not editable directly; it
// moves only through credit sales and payments.
func (s *CustomerService) UpdateCustomer(ctx context.Context, shopID, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError("Customer name cannot be empty")
		}
		customer.Name = name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer soft-deletes a customer. A customer still carrying debt
// cannot be removed.
func (s *CustomerService) DeleteCustomer(ctx context.Context, shopID, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	if customer.TotalDebt > 0 {
		return apperror.NewConflictError("Customer has outstanding debt")
	}
	return s.customerRepo.Delete(ctx, shopID, id)
}

// AddDebt increases the customer's debt by amount in baht. Credit sales
// increment debt inside the sale transaction; this covers manual entries
// such as migrating an existing ledger book.
func (s *CustomerService) AddDebt(ctx context.Context, shopID, id uuid.UUID, amount float64) (*entity.Customer, error) {
	if amount <= 0 {
		return nil, apperror.NewValidationError("Debt amount must be positive")
	}

	added := int64(amount*100 + 0.5)
	if err := s.customerRepo.IncrementDebt(ctx, shopID, id, added); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Customer")
		}
		return nil, err
	}
	return s.customerRepo.GetByID(ctx, shopID, id)
}

// PayDebt records a payment against the customer's debt. Overpayment is
// accepted and floors the debt at zero; nothing is carried as credit.
func (s *CustomerService) PayDebt(ctx context.Context, shopID, id uuid.UUID, amount float64) (*entity.Customer, error) {
	if amount <= 0 {
		return nil, apperror.NewValidationError("Payment amount must be positive")
	}

	customer, err := s.customerRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	paid := int64(amount*100 + 0.5)
	customer.TotalDebt -= paid
	if customer.TotalDebt < 0 {
		customer.TotalDebt = 0
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ListCustomers returns customers with page-based pagination
func (s *CustomerService) ListCustomers(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	customers, total, err := s.customerRepo.List(ctx, shopID, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(customers,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListDebtors returns customers with outstanding debt, largest first
func (s *CustomerService) ListDebtors(ctx context.Context, shopID uuid.UUID) ([]entity.Customer, error) {
	return s.customerRepo.ListDebtors(ctx, shopID)
}
