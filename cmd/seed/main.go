package main

import (
	"time"

	"github.com/stride-next/internal/config"
	"github.com/stride-next/internal/constants"
	"github.com/stride-next/internal/logger"
	"github.com/stride-next/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func money(value int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(value))
}

func moneyPtr(value int64) *models.Money {
	m := money(value)
	return &m
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	now := time.Now()
	products := []models.Product{
		{
			Name:          "Air Max 270 React",
			Description:   "Premium running shoes with React foam technology for ultimate comfort and performance.",
			Price:         money(12999),
			OriginalPrice: moneyPtr(15999),
			Images:        models.StringArray{"/images/products/air-max-270-react.jpg"},
			Category:      "running",
			Gender:        constants.GenderUnisex,
			Sport:         "running",
			Colors:        models.StringArray{"black", "white"},
			Sizes:         models.StringArray{"7", "8", "9", "10", "11"},
			IsTrending:    true,
			IsActive:      true,
			CreatedAt:     now.Add(-7 * 24 * time.Hour),
		},
		{
			Name:        "UltraBoost 22",
			Description: "Energy-returning running shoes with responsive Boost midsole.",
			Price:       money(16999),
			Images:      models.StringArray{"/images/products/ultraboost-22.jpg"},
			Category:    "running",
			Gender:      constants.GenderMen,
			Sport:       "running",
			Colors:      models.StringArray{"blue", "white"},
			Sizes:       models.StringArray{"8", "9", "10", "11", "12"},
			IsNew:       true,
			IsActive:    true,
			CreatedAt:   now.Add(-1 * 24 * time.Hour),
		},
		{
			Name:        "Jordan Retro High",
			Description: "Classic basketball shoes with premium leather upper and iconic style.",
			Price:       money(18999),
			Images:      models.StringArray{"/images/products/jordan-retro-high.jpg"},
			Category:    "basketball",
			Gender:      constants.GenderUnisex,
			Sport:       "basketball",
			Colors:      models.StringArray{"red", "black", "white"},
			Sizes:       models.StringArray{"7", "8", "9", "10", "11", "12"},
			IsTrending:  true,
			IsActive:    true,
			CreatedAt:   now.Add(-14 * 24 * time.Hour),
		},
		{
			Name:        "Chuck Taylor All Star",
			Description: "Timeless lifestyle sneakers with canvas upper and rubber sole.",
			Price:       money(4999),
			Images:      models.StringArray{"/images/products/chuck-taylor-all-star.jpg"},
			Category:    "lifestyle",
			Gender:      constants.GenderUnisex,
			Sport:       "lifestyle",
			Colors:      models.StringArray{"black", "white", "red"},
			Sizes:       models.StringArray{"6", "7", "8", "9", "10", "11"},
			IsActive:    true,
			CreatedAt:   now.Add(-30 * 24 * time.Hour),
		},
		{
			Name:          "React Element 55",
			Description:   "Modern lifestyle shoes with React foam cushioning.",
			Price:         money(8999),
			OriginalPrice: moneyPtr(10999),
			Images:        models.StringArray{"/images/products/react-element-55.jpg"},
			Category:      "lifestyle",
			Gender:        constants.GenderWomen,
			Sport:         "lifestyle",
			Colors:        models.StringArray{"pink", "white", "gray"},
			Sizes:         models.StringArray{"6", "7", "8", "9", "10"},
			IsActive:      true,
			CreatedAt:     now.Add(-10 * 24 * time.Hour),
		},
		{
			Name:        "Free Run 5.0",
			Description: "Flexible running shoes for natural movement.",
			Price:       money(9999),
			Images:      models.StringArray{"/images/products/free-run-5.jpg"},
			Category:    "running",
			Gender:      constants.GenderWomen,
			Sport:       "running",
			Colors:      models.StringArray{"purple", "white"},
			Sizes:       models.StringArray{"6", "7", "8", "9", "10"},
			IsNew:       true,
			IsActive:    true,
			CreatedAt:   now.Add(-2 * 24 * time.Hour),
		},
		{
			Name:        "Zoom Freak 3",
			Description: "High-performance basketball shoes with Zoom Air cushioning.",
			Price:       money(14999),
			Images:      models.StringArray{"/images/products/zoom-freak-3.jpg"},
			Category:    "basketball",
			Gender:      constants.GenderMen,
			Sport:       "basketball",
			Colors:      models.StringArray{"green", "black"},
			Sizes:       models.StringArray{"8", "9", "10", "11", "12", "13"},
			IsActive:    true,
			CreatedAt:   now.Add(-20 * 24 * time.Hour),
		},
		{
			Name:        "Court Vision Low",
			Description: "Classic court-inspired shoes with vintage basketball style.",
			Price:       money(6999),
			Images:      models.StringArray{"/images/products/court-vision-low.jpg"},
			Category:    "lifestyle",
			Gender:      constants.GenderKids,
			Sport:       "lifestyle",
			Colors:      models.StringArray{"white", "blue"},
			Sizes:       models.StringArray{"3", "4", "5", "6"},
			IsActive:    true,
			CreatedAt:   now.Add(-25 * 24 * time.Hour),
		},
	}

	for _, p := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", p.Name, err)
			} else {
				stdLog.Printf("Created product: %s", p.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", p.Name)
		}
	}

	// 演示账号
	demoUsers := []struct {
		Email     string
		Password  string
		FirstName string
		LastName  string
	}{
		{Email: "demo@stride.dev", Password: "Stride-demo1", FirstName: "Demo", LastName: "User"},
	}
	for _, u := range demoUsers {
		var existing models.User
		if err := models.DB.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			stdLog.Printf("User already exists: %s", u.Email)
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Printf("Failed to hash password for %s: %v", u.Email, err)
			continue
		}
		user := models.User{
			Email:        u.Email,
			PasswordHash: string(hashed),
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create user %s: %v", u.Email, err)
		} else {
			stdLog.Printf("Created user: %s", u.Email)
		}
	}

	stdLog.Printf("Seed completed")
}
