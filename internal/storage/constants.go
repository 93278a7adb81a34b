package storage

const (
	DefaultSheet = "RATEEXPIDR"

	tableKeyPrefix    = "stayquote:rate_table:"
	revisionKeyPrefix = "stayquote:rate_table_rev:"
	publishLockPrefix = "stayquote:publish_lock:"

	// Source kinds accepted by Open
	KindExcel  = "xlsx"
	KindRedis  = "redis"
	KindSQL    = "sql"
	KindMemory = "memory"
)
