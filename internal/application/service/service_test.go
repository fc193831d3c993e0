package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	infraRepo "github.com/pattarad/rankha-pos/internal/infrastructure/repository"
	"github.com/pattarad/rankha-pos/pkg/keylock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires every service against an in-memory database. Each test gets
// its own database and one pre-created shop with an owner.
type testEnv struct {
	db     *gorm.DB
	shopID uuid.UUID
	userID uuid.UUID

	products  *ProductService
	stock     *StockService
	sales     *SaleService
	customers *CustomerService
	shifts    *ShiftService
	invoices  *InvoiceService
	settings  *SettingsService
	reports   *ReportService
	assistant *AssistantService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Shop{},
		&entity.User{},
		&entity.Product{},
		&entity.StockMovement{},
		&entity.Customer{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Shift{},
		&entity.TaxInvoice{},
		&entity.ShopSettings{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	shop := &entity.Shop{Name: "ร้านทดสอบ"}
	if err := db.Create(shop).Error; err != nil {
		t.Fatalf("create shop: %v", err)
	}
	user := &entity.User{
		ShopID:   shop.ID,
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "x",
		Role:     entity.RoleOwner,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	productRepo := infraRepo.NewProductRepository(db)
	stockRepo := infraRepo.NewStockRepository(db)
	saleRepo := infraRepo.NewSaleRepository(db)
	customerRepo := infraRepo.NewCustomerRepository(db)
	shiftRepo := infraRepo.NewShiftRepository(db)
	invoiceRepo := infraRepo.NewInvoiceRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)
	reportRepo := infraRepo.NewReportRepository(db)

	locks := keylock.New()
	reports := NewReportService(reportRepo, saleRepo, productRepo, customerRepo)

	return &testEnv{
		db:        db,
		shopID:    shop.ID,
		userID:    user.ID,
		products:  NewProductService(productRepo),
		stock:     NewStockService(stockRepo),
		sales:     NewSaleService(saleRepo, productRepo, customerRepo, settingsRepo),
		customers: NewCustomerService(customerRepo),
		shifts:    NewShiftService(shiftRepo, saleRepo, locks),
		invoices:  NewInvoiceService(invoiceRepo, saleRepo, settingsRepo, locks),
		settings:  NewSettingsService(settingsRepo),
		reports:   reports,
		assistant: NewAssistantService(reports, "", ""),
	}
}

func (e *testEnv) createProduct(t *testing.T, name string, price float64, stock int) *entity.Product {
	t.Helper()
	product, err := e.products.CreateProduct(context.Background(), e.shopID, &CreateProductInput{
		Name:  name,
		Price: price,
		Stock: stock,
	})
	if err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return product
}

func (e *testEnv) createCustomer(t *testing.T, name string) *entity.Customer {
	t.Helper()
	customer, err := e.customers.CreateCustomer(context.Background(), e.shopID, &CreateCustomerInput{Name: name})
	if err != nil {
		t.Fatalf("create customer %s: %v", name, err)
	}
	return customer
}

func (e *testEnv) enableVat(t *testing.T) {
	t.Helper()
	enabled := true
	if _, err := e.settings.UpdateSettings(context.Background(), e.shopID, &UpdateSettingsInput{
		VatEnabled: &enabled,
	}); err != nil {
		t.Fatalf("enable vat: %v", err)
	}
}

func (e *testEnv) completeSellerInfo(t *testing.T) {
	t.Helper()
	name := "ร้านป้าดา"
	address := "123 ถนนสุขุมวิท กรุงเทพฯ"
	taxID := "1234567890123"
	if _, err := e.settings.UpdateSettings(context.Background(), e.shopID, &UpdateSettingsInput{
		SellerName:    &name,
		SellerAddress: &address,
		SellerTaxID:   &taxID,
	}); err != nil {
		t.Fatalf("complete seller info: %v", err)
	}
}

func (e *testEnv) cashSale(t *testing.T, product *entity.Product, qty int) *entity.Sale {
	t.Helper()
	sale, err := e.sales.CreateSale(context.Background(), e.shopID, &CreateSaleInput{
		UserID:      e.userID,
		PaymentType: "cash",
		Items:       []SaleItemInput{{ProductID: product.ID, Quantity: qty}},
	})
	if err != nil {
		t.Fatalf("cash sale: %v", err)
	}
	return sale
}
