package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - ключ, по которому хранится *gorm.DB (пул или транзакция)
const DBContextKey = contextKey("db")

// PrincipalKey - ключ проверенного auth.Principal в gin.Context
const PrincipalKey = contextKey("principal")
