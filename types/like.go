package types

// ToggleResult 点赞/订阅切换后的状态
type ToggleResult struct {
	State bool `json:"state"` // true=ON false=OFF
}
