package business

import (
	"time"
)

// ===========================
// Business Aggregate Root
// ===========================

// Business 商家聚合根
//
// 聚合邊界：
// - 商家身份（ID、名稱、管理員）
// - 加入碼（會員自助加入用）
// - 獎勵目錄（有序的 Reward 列表）
//
// 不變條件（Invariants）：
// 1. 商家必須有名稱與管理員
// 2. 加入碼不可為空；全系統唯一性由資料庫約束保證
// 3. 獎勵 ID 在目錄內唯一（AddReward 強制檢查）
// 4. 目錄順序即插入順序（展示順序穩定）
// 5. 商家一經創建不可刪除（本系統範圍內）
//
// 設計原則：
// - Tell, Don't Ask：目錄變更通過方法封裝，不暴露內部切片
// - 所有狀態變更更新 updatedAt 與版本號
type Business struct {
	// 識別欄位
	businessID BusinessID
	name       string
	adminOwner UserID

	// 自助加入
	joinCode JoinCode

	// 獎勵目錄（有序）
	rewards []Reward

	// 審計欄位
	createdAt time.Time
	updatedAt time.Time
	version   int // 樂觀鎖版本號（Optimistic Locking）
}

// NewBusiness 創建新商家（Checked Constructor）
//
// 參數：
// - name: 商家名稱（必填）
// - adminOwner: 創建此商家的管理員用戶 ID（必填）
// - joinCode: 已生成的加入碼（由調用端透過 GenerateJoinCode 取得）
//
// 業務規則：
// 1. 名稱不能為空
// 2. 自動生成 BusinessID（UUID）
// 3. 初始目錄為空
func NewBusiness(name string, adminOwner UserID, joinCode JoinCode) (*Business, error) {
	if name == "" {
		return nil, ErrInvalidBusinessName
	}
	if adminOwner.IsEmpty() {
		return nil, ErrInvalidUserID.WithContext(
			"reason", "adminOwner cannot be empty",
		)
	}
	if joinCode.IsZero() {
		return nil, ErrInvalidJoinCode.WithContext(
			"reason", "joinCode cannot be empty",
		)
	}

	now := time.Now()

	return &Business{
		businessID: NewBusinessID(),
		name:       name,
		adminOwner: adminOwner,
		joinCode:   joinCode,
		rewards:    make([]Reward, 0),
		createdAt:  now,
		updatedAt:  now,
		version:    1,
	}, nil
}

// ReconstructBusiness 從持久化存儲重建商家聚合
//
// 僅供 Repository 使用。與 NewBusiness 的區別：
// - 不生成新 ID、不重設時間戳
// - 仍驗證基本不變條件，防止損壞資料污染領域層
func ReconstructBusiness(
	businessID BusinessID,
	name string,
	adminOwner UserID,
	joinCode JoinCode,
	rewards []Reward,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Business, error) {
	if businessID.IsEmpty() {
		return nil, ErrInvalidBusinessID.WithContext(
			"reason", "invalid business ID in database",
		)
	}
	if name == "" {
		return nil, ErrInvalidBusinessName
	}
	if joinCode.IsZero() {
		return nil, ErrInvalidJoinCode.WithContext(
			"reason", "missing join code in database",
		)
	}

	// 防禦性複製，避免外部切片被共享
	catalog := make([]Reward, len(rewards))
	copy(catalog, rewards)

	return &Business{
		businessID: businessID,
		name:       name,
		adminOwner: adminOwner,
		joinCode:   joinCode,
		rewards:    catalog,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		version:    version,
	}, nil
}

// ===========================
// 命令方法（目錄變更）
// ===========================

// AddReward 新增獎勵至目錄
//
// 業務規則：
// - 獎勵 ID 不可與目錄內既有項目重複
// - 新項目附加於目錄尾端（維持展示順序）
//
// 錯誤：
// - ErrRewardAlreadyExists: 獎勵 ID 重複
func (b *Business) AddReward(reward Reward) error {
	if _, found := b.findReward(reward.RewardID()); found {
		return ErrRewardAlreadyExists.WithContext(
			"business_id", b.businessID.String(),
			"reward_id", reward.RewardID().String(),
		)
	}

	b.rewards = append(b.rewards, reward)
	b.touch()
	return nil
}

// UpdateReward 更新目錄內的獎勵（整體替換）
//
// 錯誤：
// - ErrRewardNotFound: 獎勵 ID 不存在於目錄
func (b *Business) UpdateReward(reward Reward) error {
	idx, found := b.findReward(reward.RewardID())
	if !found {
		return ErrRewardNotFound.WithContext(
			"business_id", b.businessID.String(),
			"reward_id", reward.RewardID().String(),
		)
	}

	b.rewards[idx] = reward
	b.touch()
	return nil
}

// RemoveReward 從目錄移除獎勵
//
// 錯誤：
// - ErrRewardNotFound: 獎勵 ID 不存在於目錄
func (b *Business) RemoveReward(rewardID RewardID) error {
	idx, found := b.findReward(rewardID)
	if !found {
		return ErrRewardNotFound.WithContext(
			"business_id", b.businessID.String(),
			"reward_id", rewardID.String(),
		)
	}

	b.rewards = append(b.rewards[:idx], b.rewards[idx+1:]...)
	b.touch()
	return nil
}

// findReward 在目錄中查找獎勵（私有輔助方法）
func (b *Business) findReward(rewardID RewardID) (int, bool) {
	for i, r := range b.rewards {
		if r.RewardID().Equals(rewardID) {
			return i, true
		}
	}
	return 0, false
}

// touch 更新審計欄位（私有輔助方法）
func (b *Business) touch() {
	b.updatedAt = time.Now()
	b.version++
}

// ===========================
// 查詢方法（Getters）
// ===========================

// BusinessID 獲取商家 ID
func (b *Business) BusinessID() BusinessID {
	return b.businessID
}

// Name 獲取商家名稱
func (b *Business) Name() string {
	return b.name
}

// AdminOwner 獲取管理員用戶 ID
func (b *Business) AdminOwner() UserID {
	return b.adminOwner
}

// JoinCode 獲取加入碼
func (b *Business) JoinCode() JoinCode {
	return b.joinCode
}

// Rewards 獲取獎勵目錄（防禦性複製）
//
// 警告：返回的切片為複本，修改複本不影響聚合狀態。
// 目錄變更必須通過 AddReward / UpdateReward / RemoveReward。
func (b *Business) Rewards() []Reward {
	catalog := make([]Reward, len(b.rewards))
	copy(catalog, b.rewards)
	return catalog
}

// FindReward 查找目錄內的獎勵
func (b *Business) FindReward(rewardID RewardID) (Reward, bool) {
	idx, found := b.findReward(rewardID)
	if !found {
		return Reward{}, false
	}
	return b.rewards[idx], true
}

// CreatedAt 獲取創建時間
func (b *Business) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt 獲取最後更新時間
func (b *Business) UpdatedAt() time.Time {
	return b.updatedAt
}

// Version 獲取版本號（用於樂觀鎖）
func (b *Business) Version() int {
	return b.version
}
