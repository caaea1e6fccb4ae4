package membership

import (
	"time"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
)

// ===========================
// Membership 聚合根
// ===========================

// Membership 會籍聚合根
//
// 一個會籍對應一組 (userID, businessID)，全系統唯一
// （唯一性由資料庫複合唯一索引保證）。
//
// 業務不變條件：
// - pointsBalance 等於所有「計入餘額」消費記錄的 pointsEarned 總和
//   （無條件記錄與已核准記錄計入；pending / rejected 不計入）
// - 消費記錄為 append-only：只增不改不刪
// - 餘額只能通過 AppendPurchase 變動，不存在其他修改路徑
// - 會籍一經建立不可刪除
//
// 設計原則：
// 1. 單一變動點：AppendPurchase 是餘額的唯一事實來源
// 2. 事件驅動：狀態變更發布領域事件，由 Repository 保存後拉取
// 3. Tell, Don't Ask：封裝業務邏輯，不暴露內部狀態供外部判斷
type Membership struct {
	// 聚合根識別符
	membershipID MembershipID
	userID       UserID
	businessID   BusinessID

	// 點數資料
	pointsBalance int
	purchases     []Purchase

	// 待持久化的新增消費記錄
	// Repository 在同一事務中通過 PullNewPurchases 取出並寫入
	newPurchases []Purchase

	// 審計欄位
	createdAt time.Time
	updatedAt time.Time

	// 待發布的領域事件
	events []shared.DomainEvent
}

// NewMembership 創建新會籍
//
// 業務規則：
// - 新會籍初始餘額為 0，消費記錄為空
// - 自動生成唯一的 MembershipID
// - 發布 MembershipEnrolled 事件
//
// 注意：商家存在性檢查屬於 Application Layer 的職責
// （需要查詢 business context），聚合只驗證引用非空
func NewMembership(userID UserID, businessID BusinessID) (*Membership, error) {
	if userID.IsEmpty() {
		return nil, ErrInvalidUserID.WithContext(
			"reason", "userID cannot be empty",
		)
	}
	if businessID.IsEmpty() {
		return nil, ErrInvalidBusinessID.WithContext(
			"reason", "businessID cannot be empty",
		)
	}

	now := time.Now()

	m := &Membership{
		membershipID:  NewMembershipID(),
		userID:        userID,
		businessID:    businessID,
		pointsBalance: 0,
		purchases:     make([]Purchase, 0),
		newPurchases:  make([]Purchase, 0),
		createdAt:     now,
		updatedAt:     now,
		events:        make([]shared.DomainEvent, 0),
	}

	m.addEvent(NewMembershipEnrolledEvent(m.membershipID, userID, businessID))

	return m, nil
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// AppendPurchase 附加消費記錄並調整餘額（核心業務邏輯）
//
// 這是餘額變動的唯一路徑：
// - 管理員直接發放（grant）
// - 申訴核准入帳（approved purchase）
// - 兌換扣點（pointsEarned 為負）
//
// 業務邏輯：
// - 記錄附加於日誌尾端（append-only）
// - 僅當記錄計入餘額時（無條件或已核准）調整 pointsBalance
// - 餘額可因兌換（pointsEarned < 0）而為負，申訴入帳永遠為正
//
// 副作用：
// - 記錄加入待持久化緩衝（Repository 於同一事務寫入）
// - 更新 updatedAt
// - 發布 PurchaseAppendedEvent
func (m *Membership) AppendPurchase(p Purchase) {
	m.purchases = append(m.purchases, p)
	m.newPurchases = append(m.newPurchases, p)

	if p.CountsTowardBalance() {
		m.pointsBalance += p.PointsEarned()
	}

	m.updatedAt = time.Now()

	m.addEvent(NewPurchaseAppendedEvent(
		m.membershipID,
		p.PurchaseID(),
		p.PointsEarned(),
		m.pointsBalance,
	))
}

// ===========================
// 事件與持久化緩衝管理
// ===========================

// addEvent 添加領域事件到待發布列表（私有方法）
func (m *Membership) addEvent(event shared.DomainEvent) {
	m.events = append(m.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
//
// 使用場景：
// - Repository 保存成功後，調用此方法獲取事件並發布
//
// 設計原則：
// - Pull 模式：聚合根不依賴 EventPublisher
// - 只讀取一次：獲取後清空，避免重複發布
func (m *Membership) PullEvents() []shared.DomainEvent {
	events := m.events
	m.events = make([]shared.DomainEvent, 0)
	return events
}

// PullNewPurchases 獲取尚未持久化的消費記錄並清空緩衝
//
// 使用場景：
// - Repository 的 Save / Update 在寫入會籍列的同一事務中，
//   取出緩衝的新記錄並逐筆插入 purchases 表
//
// 注意：調用後聚合視為已同步；若事務回滾，
// 調用端應丟棄此聚合實例並重新載入
func (m *Membership) PullNewPurchases() []Purchase {
	purchases := m.newPurchases
	m.newPurchases = make([]Purchase, 0)
	return purchases
}

// ===========================
// 查詢方法（Getters）
// ===========================

// MembershipID 獲取會籍 ID
func (m *Membership) MembershipID() MembershipID {
	return m.membershipID
}

// UserID 獲取用戶 ID
func (m *Membership) UserID() UserID {
	return m.userID
}

// BusinessID 獲取商家 ID
func (m *Membership) BusinessID() BusinessID {
	return m.businessID
}

// PointsBalance 獲取點數餘額
func (m *Membership) PointsBalance() int {
	return m.pointsBalance
}

// Purchases 獲取消費記錄（防禦性複製，依附加順序）
func (m *Membership) Purchases() []Purchase {
	log := make([]Purchase, len(m.purchases))
	copy(log, m.purchases)
	return log
}

// HasPurchaseFromSource 檢查是否存在指定來源標識的消費記錄
//
// 使用場景：
// - 對帳修復（Reconcile）檢查某申訴是否已入帳
func (m *Membership) HasPurchaseFromSource(sourceID string) bool {
	if sourceID == "" {
		return false
	}
	for _, p := range m.purchases {
		if p.SourceID() == sourceID {
			return true
		}
	}
	return false
}

// CreatedAt 獲取創建時間
func (m *Membership) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt 獲取最後更新時間
func (m *Membership) UpdatedAt() time.Time {
	return m.updatedAt
}

// ===========================
// 聚合重建方法（僅供 Infrastructure Layer 使用）
// ===========================

// ReconstructMembership 從持久化存儲重建會籍聚合
//
// 與 NewMembership 的區別：
// - 不生成新 ID、不發布事件（事件已發生過）
// - purchases 視為已持久化，不進入待寫入緩衝
//
// 重要：即使是從資料庫重建，也必須驗證不變條件：
// pointsBalance 必須等於計入餘額記錄的 pointsEarned 總和，
// 否則返回 ErrCorruptedBalance（資料損壞，禁止進入領域層）
func ReconstructMembership(
	membershipID MembershipID,
	userID UserID,
	businessID BusinessID,
	pointsBalance int,
	purchases []Purchase,
	createdAt time.Time,
	updatedAt time.Time,
) (*Membership, error) {
	if membershipID.IsEmpty() {
		return nil, ErrInvalidMembershipID.WithContext(
			"reason", "invalid membership ID in database",
		)
	}
	if userID.IsEmpty() {
		return nil, ErrInvalidUserID.WithContext(
			"reason", "invalid user ID in database",
		)
	}
	if businessID.IsEmpty() {
		return nil, ErrInvalidBusinessID.WithContext(
			"reason", "invalid business ID in database",
		)
	}

	// 驗證關鍵不變條件：餘額 = 計入記錄的點數總和
	sum := 0
	for _, p := range purchases {
		if p.CountsTowardBalance() {
			sum += p.PointsEarned()
		}
	}
	if sum != pointsBalance {
		return nil, ErrCorruptedBalance.WithContext(
			"membership_id", membershipID.String(),
			"stored_balance", pointsBalance,
			"computed_balance", sum,
		)
	}

	log := make([]Purchase, len(purchases))
	copy(log, purchases)

	return &Membership{
		membershipID:  membershipID,
		userID:        userID,
		businessID:    businessID,
		pointsBalance: pointsBalance,
		purchases:     log,
		newPurchases:  make([]Purchase, 0),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		events:        make([]shared.DomainEvent, 0),
	}, nil
}
