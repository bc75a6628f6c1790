package gorm

import (
	"github.com/medmarket/bot/internal/domain/user"
)

// UserToModel converts a domain profile to its GORM model.
func UserToModel(p *user.Profile) *UserModel {
	return &UserModel{
		TelegramID:          p.TelegramID,
		Username:            p.Username,
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		LanguageCode:        p.LanguageCode,
		IsActive:            p.IsActive,
		HasDiabetes:         p.Diagnoses.Diabetes,
		HasGout:             p.Diagnoses.Gout,
		HasCeliac:           p.Diagnoses.Celiac,
		WeightKg:            p.WeightKg,
		HeightCm:            p.HeightCm,
		Age:                 p.Age,
		NotificationEnabled: p.NotificationEnabled,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// ModelToUser converts a GORM model to the domain profile.
func ModelToUser(m *UserModel) *user.Profile {
	return &user.Profile{
		TelegramID:   m.TelegramID,
		Username:     m.Username,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		LanguageCode: m.LanguageCode,
		IsActive:     m.IsActive,
		Diagnoses: user.DiagnosisFlags{
			Diabetes: m.HasDiabetes,
			Gout:     m.HasGout,
			Celiac:   m.HasCeliac,
		},
		WeightKg:            m.WeightKg,
		HeightCm:            m.HeightCm,
		Age:                 m.Age,
		NotificationEnabled: m.NotificationEnabled,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// DiaryEntryToModel converts a domain diary entry to its GORM model.
func DiaryEntryToModel(e *user.DiaryEntry) *DiaryEntryModel {
	return &DiaryEntryModel{
		ID:            e.ID,
		TelegramID:    e.TelegramID,
		RecipeID:      e.RecipeID,
		RecipeName:    e.RecipeName,
		Calories:      e.Calories,
		Proteins:      e.Proteins,
		Fats:          e.Fats,
		Carbs:         e.Carbs,
		GlycemicIndex: e.GlycemicIndex,
		PurinesMg:     e.PurinesMg,
		PortionG:      e.PortionG,
		MealType:      string(e.MealType),
		DateEaten:     e.DateEaten,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
	}
}

// ModelToDiaryEntry converts a GORM model to the domain diary entry.
func ModelToDiaryEntry(m *DiaryEntryModel) user.DiaryEntry {
	return user.DiaryEntry{
		ID:            m.ID,
		TelegramID:    m.TelegramID,
		RecipeID:      m.RecipeID,
		RecipeName:    m.RecipeName,
		Calories:      m.Calories,
		Proteins:      m.Proteins,
		Fats:          m.Fats,
		Carbs:         m.Carbs,
		GlycemicIndex: m.GlycemicIndex,
		PurinesMg:     m.PurinesMg,
		PortionG:      m.PortionG,
		MealType:      user.MealType(m.MealType),
		DateEaten:     m.DateEaten,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// ShoppingItemToModel converts a domain shopping item to its GORM model.
func ShoppingItemToModel(i *user.ShoppingItem) *ShoppingItemModel {
	return &ShoppingItemModel{
		ID:            i.ID,
		TelegramID:    i.TelegramID,
		ProductName:   i.ProductName,
		Quantity:      i.Quantity,
		Unit:          i.Unit,
		IsPurchased:   i.IsPurchased,
		PriceEstimate: i.PriceEstimate,
		CreatedAt:     i.CreatedAt,
		PurchasedAt:   i.PurchasedAt,
	}
}

// ModelToShoppingItem converts a GORM model to the domain shopping item.
func ModelToShoppingItem(m *ShoppingItemModel) user.ShoppingItem {
	return user.ShoppingItem{
		ID:            m.ID,
		TelegramID:    m.TelegramID,
		ProductName:   m.ProductName,
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		IsPurchased:   m.IsPurchased,
		PriceEstimate: m.PriceEstimate,
		CreatedAt:     m.CreatedAt,
		PurchasedAt:   m.PurchasedAt,
	}
}
