package storage

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrTableNotFound is returned when no snapshot exists for the sheet.
var ErrTableNotFound = errors.New("rate table snapshot not found")

// RedisSource reads a rate table snapshot stored as JSON in Redis
type RedisSource struct {
	client *redis.Client
	sheet  string
	ttl    time.Duration
}

// NewRedisSource connects to addr, a URL such as tcp://:secret@localhost:6379/2
func NewRedisSource(addr, sheet string, options ...RedisOption) (*RedisSource, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "can't parse url for redis %q", addr)
	}
	var passwd string
	if u.User != nil {
		passwd, _ = u.User.Password()
	}
	db := 0
	if 1 < len(u.Path) {
		db, err = strconv.Atoi(u.Path[1:])
		if err != nil {
			return nil, errors.Wrapf(err, "can't convert redis db in %q", addr)
		}
	}
	network := u.Scheme
	if network == "" || network == "redis" {
		network = "tcp"
	}

	client := redis.NewClient(&redis.Options{
		Network:  network,
		Addr:     u.Host,
		Password: passwd,
		DB:       db,
	})

	// Test connection
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to Redis")
	}

	if sheet == "" {
		sheet = DefaultSheet
	}
	rs := &RedisSource{
		client: client,
		sheet:  sheet,
	}
	for _, option := range options {
		option(rs)
	}
	return rs, nil
}

// RedisOption is a function that configures the Redis source
type RedisOption func(*RedisSource)

// WithSnapshotTTL expires imported snapshots after ttl; zero keeps them forever.
func WithSnapshotTTL(ttl time.Duration) RedisOption {
	return func(rs *RedisSource) {
		rs.ttl = ttl
	}
}

func (rs *RedisSource) FetchRows(ctx context.Context) ([]Row, error) {
	table, err := rs.GetTable(ctx, rs.sheet)
	if err != nil {
		return nil, err
	}
	return table.Rows, nil
}

// GetTable loads the snapshot for sheet.
func (rs *RedisSource) GetTable(ctx context.Context, sheet string) (*RateTable, error) {
	data, err := rs.client.Get(ctx, tableKeyPrefix+sheet).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.Wrapf(ErrTableNotFound, "sheet %q", sheet)
		}
		return nil, errors.Wrap(err, "failed to get rate table from Redis")
	}

	var table RateTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal rate table")
	}
	return &table, nil
}

// ImportRows stores rows as a new revision of the sheet snapshot.
func (rs *RedisSource) ImportRows(ctx context.Context, sheet string, rows []Row) error {
	if sheet == "" {
		sheet = rs.sheet
	}
	rev, err := rs.client.Incr(ctx, revisionKeyPrefix+sheet).Result()
	if err != nil {
		return errors.Wrap(err, "failed to bump rate table revision")
	}

	data, err := json.Marshal(RateTable{
		Sheet:      sheet,
		Revision:   rev,
		ImportedAt: time.Now().UTC(),
		Rows:       rows,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal rate table")
	}
	return errors.Wrap(rs.client.Set(ctx, tableKeyPrefix+sheet, data, rs.ttl).Err(), "failed to store rate table")
}

// RefreshTable pushes the snapshot expiry of sheet out by the configured
// TTL. It reports false once the snapshot is gone.
func (rs *RedisSource) RefreshTable(ctx context.Context, sheet string) (bool, error) {
	if sheet == "" {
		sheet = rs.sheet
	}
	key := tableKeyPrefix + sheet
	if rs.ttl <= 0 {
		n, err := rs.client.Exists(ctx, key).Result()
		if err != nil {
			return false, errors.Wrap(err, "failed to check rate table")
		}
		return n == 1, nil
	}
	ok, err := rs.client.Expire(ctx, key, rs.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to refresh rate table expiry")
	}
	return ok, nil
}

// Publish lock methods

// renewScript extends the lock only while owner still holds it.
var renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

func (rs *RedisSource) AcquireLock(ctx context.Context, owner string, ttl time.Duration) (bool, error) {
	// SET NX with expiry keeps election atomic
	ok, err := rs.client.SetNX(ctx, publishLockPrefix+rs.sheet, owner, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to acquire publish lock")
	}
	return ok, nil
}

func (rs *RedisSource) RenewLock(ctx context.Context, owner string, ttl time.Duration) (bool, error) {
	n, err := renewScript.Run(ctx, rs.client, []string{publishLockPrefix + rs.sheet}, owner, ttl.Milliseconds()).Int()
	if err != nil {
		return false, errors.Wrap(err, "failed to renew publish lock")
	}
	return n == 1, nil
}

func (rs *RedisSource) ReleaseLock(ctx context.Context, owner string) error {
	// Only release if we're the current holder
	holder, err := rs.client.Get(ctx, publishLockPrefix+rs.sheet).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return errors.Wrap(err, "failed to check publish lock holder")
	}
	if holder == owner {
		return rs.client.Del(ctx, publishLockPrefix+rs.sheet).Err()
	}
	return nil
}

// Cleanup removes the snapshot and revision keys of sheet.
func (rs *RedisSource) Cleanup(ctx context.Context, sheet string) error {
	return rs.client.Del(ctx, tableKeyPrefix+sheet, revisionKeyPrefix+sheet, publishLockPrefix+sheet).Err()
}

func (rs *RedisSource) Close() error {
	return rs.client.Close()
}
