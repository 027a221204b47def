// Package seed loads the static sample datasets into the in-memory store.
// The records mirror the shop's demo data exactly: 8 customers, 8 products,
// 5 sales, 5 service orders and 5 employees.
package seed

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/guilhermemendeslima/clickcell-system/internal/model"
)

// Run inserts the sample datasets. It is idempotent: an already-seeded store
// is left untouched.
func Run(db *gorm.DB) error {
	var n int64
	if err := db.Model(&model.Employee{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	employees := Employees()
	if err := db.Create(&employees).Error; err != nil {
		return err
	}
	customers := Customers()
	if err := db.Create(&customers).Error; err != nil {
		return err
	}
	products := Products()
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	sales := Sales()
	if err := db.Create(&sales).Error; err != nil {
		return err
	}
	orders := ServiceOrders()
	return db.Create(&orders).Error
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func sp(s string) *string { return &s }

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func Customers() []model.Customer {
	return []model.Customer{
		{ID: "1", Name: "Ana Silva", Phone: "(31) 98765-4321", Email: "ana.silva@email.com", Address: "Rua dos Tupis, 123, Centro, Belo Horizonte, MG", Birthday: "1990-05-15", RegisteredAt: "2023-01-10", Purchases: 5, LastPurchase: sp("2023-09-12")},
		{ID: "2", Name: "Carlos Oliveira", Phone: "(31) 97654-3210", Email: "carlos.oliveira@email.com", Address: "Av. Afonso Pena, 1000, Centro, Belo Horizonte, MG", Birthday: "1985-08-22", RegisteredAt: "2023-02-05", Purchases: 3, LastPurchase: sp("2023-10-15")},
		{ID: "3", Name: "Mariana Costa", Phone: "(31) 96543-2109", Email: "mariana.costa@email.com", Address: "Rua da Bahia, 789, Centro, Belo Horizonte, MG", Birthday: "1992-11-30", RegisteredAt: "2023-03-12", Purchases: 2, LastPurchase: sp("2023-07-08")},
		{ID: "4", Name: "Rafael Santos", Phone: "(31) 95432-1098", Email: "rafael.santos@email.com", Address: "Av. do Contorno, 456, Funcionarios, Belo Horizonte, MG", Birthday: "1988-03-25", RegisteredAt: "2023-01-30", Purchases: 7, LastPurchase: sp("2023-11-02")},
		{ID: "5", Name: "Juliana Lima", Phone: "(31) 94321-0987", Email: "juliana.lima@email.com", Address: "Rua Sergipe, 345, Savassi, Belo Horizonte, MG", Birthday: "1995-07-12", RegisteredAt: "2023-04-18", Purchases: 1, LastPurchase: sp("2023-08-29")},
		{ID: "6", Name: "Fernando Dias", Phone: "(31) 93210-9876", Email: "fernando.dias@email.com", Address: "Av. Prudente de Morais, 567, Santo Antonio, Belo Horizonte, MG", Birthday: "1980-12-05", RegisteredAt: "2023-02-22", Purchases: 4, LastPurchase: sp("2023-10-31")},
		{ID: "7", Name: "Gabriela Martins", Phone: "(31) 92109-8765", Email: "gabriela.martins@email.com", Address: "Rua Pernambuco, 890, Savassi, Belo Horizonte, MG", Birthday: "1993-04-18", RegisteredAt: "2023-03-01", Purchases: 2, LastPurchase: sp("2023-09-05")},
		{ID: "8", Name: "Rodrigo Alves", Phone: "(31) 91098-7654", Email: "rodrigo.alves@email.com", Address: "Rua Rio Grande do Sul, 234, Santa Efigenia, Belo Horizonte, MG", Birthday: "1983-09-10", RegisteredAt: "2023-05-15", Purchases: 6, LastPurchase: nil},
	}
}

func Products() []model.Product {
	return []model.Product{
		{ID: "1", Name: "iPhone 13 Pro", Description: `Apple iPhone 13 Pro 256GB, tela Super Retina XDR de 6,1"`, Category: model.CategorySmartphones, PurchasePrice: d("6500"), SellingPrice: d("8199.99"), Quantity: 8, LowStockThreshold: 5, ImageURL: "https://images.pexels.com/photos/5750001/pexels-photo-5750001.jpeg", SKU: "IPH-13P-256", RegisteredAt: "2023-01-15"},
		{ID: "2", Name: "Samsung Galaxy S22", Description: `Samsung Galaxy S22 128GB, 6,1" Dynamic AMOLED 2X`, Category: model.CategorySmartphones, PurchasePrice: d("3800"), SellingPrice: d("4499.99"), Quantity: 12, LowStockThreshold: 5, ImageURL: "https://images.pexels.com/photos/13060599/pexels-photo-13060599.jpeg", SKU: "SAM-S22-128", RegisteredAt: "2023-02-10"},
		{ID: "3", Name: "AirPods Pro", Description: "Apple AirPods Pro com cancelamento de ruido", Category: model.CategoryAccessories, PurchasePrice: d("1200"), SellingPrice: d("1799.99"), Quantity: 15, LowStockThreshold: 5, ImageURL: "https://images.pexels.com/photos/3780681/pexels-photo-3780681.jpeg", SKU: "APP-PRO-01", RegisteredAt: "2023-01-20"},
		{ID: "4", Name: "Carregador USB-C 20W", Description: "Carregador rapido USB-C de 20W para smartphones", Category: model.CategoryAccessories, PurchasePrice: d("50"), SellingPrice: d("129.99"), Quantity: 25, LowStockThreshold: 10, ImageURL: "https://images.pexels.com/photos/4526407/pexels-photo-4526407.jpeg", SKU: "CHG-USBC-20W", RegisteredAt: "2023-03-05"},
		{ID: "5", Name: "Tela iPhone 11", Description: "Tela de reposicao original para iPhone 11", Category: model.CategoryParts, PurchasePrice: d("450"), SellingPrice: d("899.99"), Quantity: 4, LowStockThreshold: 3, ImageURL: "https://images.pexels.com/photos/1294886/pexels-photo-1294886.jpeg", SKU: "PRT-SCR-IP11", RegisteredAt: "2023-04-12"},
		{ID: "6", Name: `iPad Pro 11"`, Description: `iPad Pro 11" M2 chip, 256GB, Wi-Fi`, Category: model.CategoryTablets, PurchasePrice: d("5200"), SellingPrice: d("6799.99"), Quantity: 7, LowStockThreshold: 3, ImageURL: "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg", SKU: "IPD-PRO-M2", RegisteredAt: "2023-02-15"},
		{ID: "7", Name: "Bateria Galaxy S21", Description: "Bateria de reposicao para Samsung Galaxy S21", Category: model.CategoryParts, PurchasePrice: d("120"), SellingPrice: d("249.99"), Quantity: 2, LowStockThreshold: 5, ImageURL: "https://images.pexels.com/photos/6758685/pexels-photo-6758685.jpeg", SKU: "PRT-BAT-S21", RegisteredAt: "2023-03-22"},
		{ID: "8", Name: "Capa Protetora iPhone 14", Description: "Capa transparente anti-impacto para iPhone 14", Category: model.CategoryAccessories, PurchasePrice: d("25"), SellingPrice: d("89.99"), Quantity: 30, LowStockThreshold: 10, ImageURL: "https://images.pexels.com/photos/4071887/pexels-photo-4071887.jpeg", SKU: "ACC-CASE-IP14", RegisteredAt: "2023-05-01"},
	}
}

func Sales() []model.Sale {
	return []model.Sale{
		{
			ID: "V-2023-001", CustomerID: sp("1"), CustomerName: sp("Ana Silva"), Date: ts("2023-09-12T14:30:00Z"),
			Items: []model.SaleItem{
				{ProductID: "1", ProductName: "iPhone 13 Pro", Quantity: 1, UnitPrice: d("8199.99"), Subtotal: d("8199.99")},
				{ProductID: "3", ProductName: "AirPods Pro", Quantity: 1, UnitPrice: d("1799.99"), Subtotal: d("1799.99")},
			},
			Total: d("9999.98"), PaymentMethod: model.PaymentCreditCard, EmployeeID: "2", EmployeeName: "Marina Souza", Status: model.SaleCompleted,
		},
		{
			ID: "V-2023-002", CustomerID: sp("2"), CustomerName: sp("Carlos Oliveira"), Date: ts("2023-10-15T10:15:00Z"),
			Items: []model.SaleItem{
				{ProductID: "2", ProductName: "Samsung Galaxy S22", Quantity: 1, UnitPrice: d("4499.99"), Subtotal: d("4499.99")},
				{ProductID: "4", ProductName: "Carregador USB-C 20W", Quantity: 2, UnitPrice: d("129.99"), Subtotal: d("259.98")},
				{ProductID: "8", ProductName: "Capa Protetora iPhone 14", Quantity: 1, UnitPrice: d("89.99"), Subtotal: d("89.99")},
			},
			Total: d("4849.96"), PaymentMethod: model.PaymentPix, EmployeeID: "4", EmployeeName: "Juliana Alves", Status: model.SaleCompleted,
		},
		{
			ID: "V-2023-003", CustomerID: sp("5"), CustomerName: sp("Juliana Lima"), Date: ts("2023-08-29T16:45:00Z"),
			Items: []model.SaleItem{
				{ProductID: "6", ProductName: `iPad Pro 11"`, Quantity: 1, UnitPrice: d("6799.99"), Subtotal: d("6799.99")},
			},
			Total: d("6799.99"), PaymentMethod: model.PaymentCreditCard, EmployeeID: "2", EmployeeName: "Marina Souza", Status: model.SaleCompleted,
		},
		{
			ID: "V-2023-004", Date: ts("2023-10-10T09:30:00Z"),
			Items: []model.SaleItem{
				{ProductID: "4", ProductName: "Carregador USB-C 20W", Quantity: 1, UnitPrice: d("129.99"), Subtotal: d("129.99")},
				{ProductID: "8", ProductName: "Capa Protetora iPhone 14", Quantity: 1, UnitPrice: d("89.99"), Subtotal: d("89.99")},
			},
			Total: d("219.98"), PaymentMethod: model.PaymentCash, EmployeeID: "4", EmployeeName: "Juliana Alves", Status: model.SaleCompleted,
		},
		{
			ID: "V-2023-005", CustomerID: sp("3"), CustomerName: sp("Mariana Costa"), Date: ts("2023-07-08T11:20:00Z"),
			Items: []model.SaleItem{
				{ProductID: "3", ProductName: "AirPods Pro", Quantity: 1, UnitPrice: d("1799.99"), Subtotal: d("1799.99")},
			},
			Total: d("1799.99"), PaymentMethod: model.PaymentDebitCard, EmployeeID: "2", EmployeeName: "Marina Souza", Status: model.SaleCompleted,
		},
	}
}

func ServiceOrders() []model.ServiceOrder {
	return []model.ServiceOrder{
		{
			ID: "OS-2023-001", CustomerID: "1", CustomerName: "Ana Silva", DeviceType: "Smartphone", DeviceModel: "iPhone 12",
			Defect: "Tela quebrada", IMEI: "352789102345678", DevicePassword: "1234", Budget: dp("799.99"),
			Notes:  "Cliente relatou que o aparelho caiu no chao. Tela quebrada mas ainda funciona.",
			Status: model.OrderInProgress, CreatedAt: ts("2023-06-10T10:30:00Z"), UpdatedAt: ts("2023-06-11T14:15:00Z"),
			TechnicianID: sp("3"), TechnicianName: sp("Ricardo Costa"),
		},
		{
			ID: "OS-2023-002", CustomerID: "2", CustomerName: "Carlos Oliveira", DeviceType: "Smartphone", DeviceModel: "Samsung Galaxy S21",
			Defect: "Nao carrega", IMEI: "356789054321890", DevicePassword: "0000",
			Notes:  "Aparelho nao carrega. Verificar porta USB-C e bateria.",
			Status: model.OrderDiagnosing, CreatedAt: ts("2023-06-12T09:45:00Z"), UpdatedAt: ts("2023-06-12T09:45:00Z"),
		},
		{
			ID: "OS-2023-003", CustomerID: "4", CustomerName: "Rafael Santos", DeviceType: "Tablet", DeviceModel: `iPad Pro 11"`,
			Defect: "Nao liga", IMEI: "357123456789012", DevicePassword: "141516", Budget: dp("349.99"),
			Notes:  "Cliente tentou varias vezes ligar o aparelho sem sucesso. Verificar placa e bateria.",
			Status: model.OrderWaitingApproval, CreatedAt: ts("2023-06-05T14:20:00Z"), UpdatedAt: ts("2023-06-07T11:30:00Z"),
			TechnicianID: sp("5"), TechnicianName: sp("Pedro Santos"),
		},
		{
			ID: "OS-2023-004", CustomerID: "6", CustomerName: "Fernando Dias", DeviceType: "Smartphone", DeviceModel: "Xiaomi Redmi Note 10",
			Defect: "Camera nao funciona", IMEI: "358765432109876", DevicePassword: "5555", Budget: dp("249.99"),
			Notes:  "Camera principal nao funciona. Camera frontal ok.",
			Status: model.OrderCompleted, CreatedAt: ts("2023-06-01T08:50:00Z"), UpdatedAt: ts("2023-06-04T16:25:00Z"),
			TechnicianID: sp("3"), TechnicianName: sp("Ricardo Costa"),
		},
		{
			ID: "OS-2023-005", CustomerID: "7", CustomerName: "Gabriela Martins", DeviceType: "Smartphone", DeviceModel: "Motorola Moto G9",
			Defect: "Tela com manchas", IMEI: "359876543210987", DevicePassword: "1515", Budget: dp("399.99"),
			Notes:  "Tela apresenta manchas escuras na parte inferior. Possivel problema de LCD.",
			Status: model.OrderDelivered, CreatedAt: ts("2023-05-28T13:15:00Z"), UpdatedAt: ts("2023-06-03T10:20:00Z"),
			TechnicianID: sp("5"), TechnicianName: sp("Pedro Santos"),
		},
	}
}

func Employees() []model.Employee {
	return []model.Employee{
		{ID: "1", Name: "Guilherme Mendes", Email: "admin@clickcelulares.com", Role: model.RoleAdmin, HireDate: "2022-01-10", Phone: "(31) 98765-4321", Avatar: "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg", Status: model.EmployeeActive},
		{ID: "2", Name: "Marina Souza", Email: "vendas@clickcelulares.com", Role: model.RoleSalesperson, HireDate: "2022-03-15", Phone: "(31) 97654-3210", Avatar: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg", Status: model.EmployeeActive},
		{ID: "3", Name: "Ricardo Costa", Email: "tecnico@clickcelulares.com", Role: model.RoleTechnician, HireDate: "2022-02-20", Phone: "(31) 96543-2109", Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg", Status: model.EmployeeActive},
		{ID: "4", Name: "Juliana Alves", Email: "juliana.alves@clickcelulares.com", Role: model.RoleSalesperson, HireDate: "2022-04-05", Phone: "(31) 95432-1098", Avatar: "https://images.pexels.com/photos/773371/pexels-photo-773371.jpeg", Status: model.EmployeeActive},
		{ID: "5", Name: "Pedro Santos", Email: "pedro.santos@clickcelulares.com", Role: model.RoleTechnician, HireDate: "2022-05-12", Phone: "(31) 94321-0987", Avatar: "https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg", Status: model.EmployeeInactive},
	}
}
