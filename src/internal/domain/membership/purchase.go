package membership

import (
	"time"

	"github.com/shopspring/decimal"
)

// ===========================
// PurchaseStatus / PurchaseSource
// ===========================

// PurchaseStatus 消費記錄的審核狀態
//
// 語義：
// - StatusNone（空字串）：無條件記錄（管理員直接發放），立即計入餘額
// - StatusApproved：源自申訴且已核准，計入餘額
// - StatusPending / StatusRejected：不計入餘額
//
// 注意：本系統的申訴核准在單一事務中同時轉移申訴狀態並建立
// StatusApproved 記錄，因此不存在「先建立 pending 記錄再改狀態」
// 的路徑；pending / rejected 保留為資料模型的合法值以相容歷史資料
type PurchaseStatus string

const (
	StatusNone     PurchaseStatus = ""
	StatusPending  PurchaseStatus = "pending"
	StatusApproved PurchaseStatus = "approved"
	StatusRejected PurchaseStatus = "rejected"
)

// IsValid 檢查狀態值是否合法
func (s PurchaseStatus) IsValid() bool {
	switch s {
	case StatusNone, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CountsTowardBalance 此狀態的記錄是否計入點數餘額
//
// 不變條件的核心：pointsBalance = Σ pointsEarned（僅限計入的記錄）
func (s PurchaseStatus) CountsTowardBalance() bool {
	return s == StatusNone || s == StatusApproved
}

// PurchaseSource 消費記錄的來源
//
// 用途：
// - SourceDirect：管理員直接發放（grant），sourceID 為空
// - SourceAppeal：申訴核准產生，sourceID 為申訴 ID
//   （sourceID 唯一約束保證同一申訴至多入帳一次）
type PurchaseSource string

const (
	SourceDirect PurchaseSource = "direct"
	SourceAppeal PurchaseSource = "appeal"
)

// IsValid 檢查來源值是否合法
func (s PurchaseSource) IsValid() bool {
	return s == SourceDirect || s == SourceAppeal
}

// ===========================
// Purchase Entity
// ===========================

// Purchase 消費記錄實體
//
// 不變條件：
// 1. 一經建立不可變更（append-only 審計記錄）
// 2. amount >= 0（金額為消費憑證資訊，非點數）
// 3. pointsEarned 為帶號整數：正數為獲得、負數為兌換扣點
// 4. 源自申訴的記錄必須攜帶申訴 ID（source = appeal, sourceID 非空）
//
// 設計原則：
// - 金額使用 decimal.Decimal，避免浮點誤差
// - 點數為純整數，無小數點數概念
type Purchase struct {
	purchaseID   PurchaseID
	item         string
	amount       decimal.Decimal
	pointsEarned int
	status       PurchaseStatus
	source       PurchaseSource
	sourceID     string
	purchasedAt  time.Time
}

// NewPurchase 創建新的消費記錄（Checked Constructor）
//
// 參數：
// - item: 品項名稱（必填）
// - amount: 消費金額（>= 0）
// - pointsEarned: 點數增減（正為獲得，負為兌換）
// - status: 審核狀態（直接發放用 StatusNone）
// - source: 來源（direct / appeal）
// - sourceID: 來源標識（appeal 來源必填，為申訴 ID）
//
// 錯誤：
// - ErrInvalidPurchaseItem / ErrInvalidPurchaseAmount /
//   ErrInvalidPurchaseStatus / ErrInvalidPurchaseSource
func NewPurchase(
	item string,
	amount decimal.Decimal,
	pointsEarned int,
	status PurchaseStatus,
	source PurchaseSource,
	sourceID string,
) (Purchase, error) {
	if item == "" {
		return Purchase{}, ErrInvalidPurchaseItem
	}
	if amount.IsNegative() {
		return Purchase{}, ErrInvalidPurchaseAmount.WithContext(
			"amount", amount.String(),
		)
	}
	if !status.IsValid() {
		return Purchase{}, ErrInvalidPurchaseStatus.WithContext(
			"status", string(status),
		)
	}
	if !source.IsValid() {
		return Purchase{}, ErrInvalidPurchaseSource.WithContext(
			"source", string(source),
		)
	}
	if source == SourceAppeal && sourceID == "" {
		return Purchase{}, ErrInvalidPurchaseSource.WithContext(
			"reason", "appeal-sourced purchase requires the appeal id",
		)
	}

	return Purchase{
		purchaseID:   NewPurchaseID(),
		item:         item,
		amount:       amount,
		pointsEarned: pointsEarned,
		status:       status,
		source:       source,
		sourceID:     sourceID,
		purchasedAt:  time.Now(),
	}, nil
}

// ReconstructPurchase 從持久化存儲重建消費記錄
//
// 僅供 Infrastructure Layer 使用；仍驗證基本約束，
// 防止損壞資料污染領域層
func ReconstructPurchase(
	purchaseID PurchaseID,
	item string,
	amount decimal.Decimal,
	pointsEarned int,
	status PurchaseStatus,
	source PurchaseSource,
	sourceID string,
	purchasedAt time.Time,
) (Purchase, error) {
	if purchaseID.IsEmpty() {
		return Purchase{}, ErrInvalidPurchaseID.WithContext(
			"reason", "invalid purchase ID in database",
		)
	}
	if item == "" {
		return Purchase{}, ErrInvalidPurchaseItem
	}
	if amount.IsNegative() {
		return Purchase{}, ErrInvalidPurchaseAmount.WithContext(
			"amount", amount.String(),
		)
	}
	if !status.IsValid() {
		return Purchase{}, ErrInvalidPurchaseStatus.WithContext(
			"status", string(status),
		)
	}
	if !source.IsValid() {
		return Purchase{}, ErrInvalidPurchaseSource.WithContext(
			"source", string(source),
		)
	}

	return Purchase{
		purchaseID:   purchaseID,
		item:         item,
		amount:       amount,
		pointsEarned: pointsEarned,
		status:       status,
		source:       source,
		sourceID:     sourceID,
		purchasedAt:  purchasedAt,
	}, nil
}

// PurchaseID 獲取消費記錄 ID
func (p Purchase) PurchaseID() PurchaseID {
	return p.purchaseID
}

// Item 獲取品項名稱
func (p Purchase) Item() string {
	return p.item
}

// Amount 獲取消費金額
func (p Purchase) Amount() decimal.Decimal {
	return p.amount
}

// PointsEarned 獲取點數增減（帶號）
func (p Purchase) PointsEarned() int {
	return p.pointsEarned
}

// Status 獲取審核狀態
func (p Purchase) Status() PurchaseStatus {
	return p.status
}

// Source 獲取來源
func (p Purchase) Source() PurchaseSource {
	return p.source
}

// SourceID 獲取來源標識（appeal 來源為申訴 ID，direct 為空）
func (p Purchase) SourceID() string {
	return p.sourceID
}

// PurchasedAt 獲取消費時間
func (p Purchase) PurchasedAt() time.Time {
	return p.purchasedAt
}

// CountsTowardBalance 此記錄是否計入點數餘額
func (p Purchase) CountsTowardBalance() bool {
	return p.status.CountsTowardBalance()
}
