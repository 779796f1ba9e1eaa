// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Rows are immutable: there is no update path and no soft delete.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	Description     string          `gorm:"type:varchar(255);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type            string          `gorm:"type:varchar(10);not null;index"`
	Category        string          `gorm:"type:varchar(30);not null;index"`
	ReceiptImageURI *string         `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		Date:            m.Date,
		Description:     m.Description,
		Amount:          m.Amount,
		Type:            entity.TransactionType(m.Type),
		Category:        entity.Category(m.Category),
		ReceiptImageURI: m.ReceiptImageURI,
		CreatedAt:       m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		Date:            transaction.Date,
		Description:     transaction.Description,
		Amount:          transaction.Amount,
		Type:            string(transaction.Type),
		Category:        transaction.Category.String(),
		ReceiptImageURI: transaction.ReceiptImageURI,
		CreatedAt:       transaction.CreatedAt,
	}
}
