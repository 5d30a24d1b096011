package domain

import "time"

// BinStatus represents the physical status of a skip bin
type BinStatus string

const (
	BinStatusAvailable   BinStatus = "available"
	BinStatusBooked      BinStatus = "booked"
	BinStatusDelivered   BinStatus = "delivered"
	BinStatusMaintenance BinStatus = "maintenance"
)

// BinCondition represents the condition grade of a skip bin
type BinCondition string

const (
	ConditionExcellent   BinCondition = "excellent"
	ConditionGood        BinCondition = "good"
	ConditionFair        BinCondition = "fair"
	ConditionNeedsRepair BinCondition = "needs_repair"
)

// Bin represents a physical rentable skip bin tracked by a unique business number
type Bin struct {
	ID          int64
	BinNumber   string
	Size        string
	Status      BinStatus
	Condition   BinCondition
	Location    string
	LastService *time.Time
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the bin can be assigned to a new booking
func (b *Bin) IsAvailable() bool {
	return b.Status == BinStatusAvailable
}

// ValidBinStatus reports whether s is one of the known bin statuses
func ValidBinStatus(s BinStatus) bool {
	switch s {
	case BinStatusAvailable, BinStatusBooked, BinStatusDelivered, BinStatusMaintenance:
		return true
	}
	return false
}

// ValidBinCondition reports whether c is one of the known condition grades
func ValidBinCondition(c BinCondition) bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionNeedsRepair:
		return true
	}
	return false
}

// BinFilter фильтр для получения списка бинов
type BinFilter struct {
	Status *BinStatus // Фильтр по статусу (опционально)
	Size   *string    // Фильтр по размеру (опционально)
	Text   *string    // Подстрочный поиск по номеру бина и локации (опционально)
}
