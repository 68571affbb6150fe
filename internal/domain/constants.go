package domain

// Форматы даты и времени
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // формат inicio/fin, который ожидает бэкенд
)

// Cookie и заголовки
const (
	CookieAuthToken = "auth_token"
	CookieUserRole  = "user_role"

	HeaderTotalCount    = "X-Total-Count"
	HeaderFilteredCount = "X-Filtered-Count"
	HeaderRequestID     = "X-Request-ID"
)

// RoleAdmin единственная роль с доступом к дашборду
const RoleAdmin = "admin"

// Ограничения пакетного создания слотов
const (
	MinSlotIntervalMinutes = 1
	MaxSlotBatchDays       = 366
	MaxPreviewSlots        = 2000 // больше не перечисляем, отдаем только количество
)

// Ограничения журнала активности
const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)
