package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY   = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS = 40001 // 400 - 無效的請求參數
	INVALID_DATE       = 40003 // 400 - 日期格式錯誤
	INVALID_RECURRENCE = 40004 // 400 - RRULE 無法解析

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED           = 40100 // 401 - 未授權
	INVALID_SESSION        = 40101 // 401 - 會話失效
	ORGANIZATION_FORBIDDEN = 40300 // 403 - 無權操作此組織
	FORBIDDEN              = 40301 // 403 - 禁止訪問

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 40900 ~ 40999: 衝突錯誤 (409 系列)
	CONFLICT      = 40900 // 409 - 同員工同日同班別重覆
	RESOURCE_BUSY = 40901 // 409 - 同一組織有其他寫入進行中

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 速率限制超過

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停 (維護模式)
)
