package business

// ===========================
// PointsCost Value Object
// ===========================

// PointsCost 兌換點數值對象
//
// 建構約束：兌換一項獎勵所需的點數必須為正整數
// （免費獎勵不經過點數目錄，零成本項目無意義）
type PointsCost struct {
	value int
}

// NewPointsCost 建構函數（Checked Constructor）
func NewPointsCost(value int) (PointsCost, error) {
	if value <= 0 {
		return PointsCost{}, ErrInvalidPointsCost.WithContext(
			"points_cost", value,
		)
	}
	return PointsCost{value: value}, nil
}

// Value 獲取點數值
func (p PointsCost) Value() int {
	return p.value
}

// Equals 比較兩個 PointsCost 是否相等
func (p PointsCost) Equals(other PointsCost) bool {
	return p.value == other.value
}

// ===========================
// Reward Entity
// ===========================

// Reward 獎勵項目實體
//
// 聚合歸屬：
// - Reward 由 Business 聚合根獨占擁有，不可跨商家共享
// - 所有目錄變更（新增/修改/刪除）必須經由 Business 聚合的方法執行，
//   以維持「獎勵 ID 在商家目錄內唯一」的不變條件
//
// 設計原則：
// - 不可變性：欄位 unexported，修改即建立新實體（UpdateReward 整體替換）
type Reward struct {
	rewardID    RewardID
	title       string
	description string
	pointsCost  PointsCost
	category    string
}

// NewReward 創建新的獎勵項目（自動生成 RewardID）
//
// 參數：
// - title: 獎勵名稱（必填）
// - description: 說明文字（可空）
// - pointsCost: 兌換點數（必須為正，已由 PointsCost 保證）
// - category: 分類標籤（可空）
//
// 返回：
// - Reward: 新創建的獎勵項目
// - error: title 為空時返回 ErrInvalidRewardTitle
func NewReward(title, description string, pointsCost PointsCost, category string) (Reward, error) {
	if title == "" {
		return Reward{}, ErrInvalidRewardTitle
	}

	return Reward{
		rewardID:    NewRewardID(),
		title:       title,
		description: description,
		pointsCost:  pointsCost,
		category:    category,
	}, nil
}

// ReconstructReward 從持久化存儲重建獎勵項目
//
// 僅供 Infrastructure Layer 使用
func ReconstructReward(
	rewardID RewardID,
	title, description string,
	pointsCost PointsCost,
	category string,
) (Reward, error) {
	if rewardID.IsEmpty() {
		return Reward{}, ErrInvalidRewardID.WithContext(
			"reason", "invalid reward ID in database",
		)
	}
	if title == "" {
		return Reward{}, ErrInvalidRewardTitle
	}

	return Reward{
		rewardID:    rewardID,
		title:       title,
		description: description,
		pointsCost:  pointsCost,
		category:    category,
	}, nil
}

// RewardID 獲取獎勵 ID
func (r Reward) RewardID() RewardID {
	return r.rewardID
}

// Title 獲取獎勵名稱
func (r Reward) Title() string {
	return r.title
}

// Description 獲取說明文字
func (r Reward) Description() string {
	return r.description
}

// PointsCost 獲取兌換點數
func (r Reward) PointsCost() PointsCost {
	return r.pointsCost
}

// Category 獲取分類標籤
func (r Reward) Category() string {
	return r.category
}
