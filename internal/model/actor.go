package model

// Actor 发起操作的管理员，由鉴权层解析后显式传入各服务
type Actor struct {
	AdminID   string
	Name      string
	IPAddress string
	UserAgent string
}
