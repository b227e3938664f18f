package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

const (
	keyPrefix = "booked_slots:"
	genPrefix = "booked_slots_gen:"
)

// ErrCache возвращается при ошибке работы с redis
var ErrCache = errors.New("slots.cache: redis error")

var errStaleGeneration = errors.New("slots.cache: stale generation")

// Cache кэш занятых слотов капстера в redis
// Все слоты капстера хранятся в одном hash (поле - набор статусов), поэтому
// инвалидация при любой записи бронирования - это один DEL
// Каждая инвалидация увеличивает поколение капстера. Читатель запоминает поколение до чтения БД
// и передает его в Set; если поколение успело измениться, запись пропускается
// При client == nil или ttl <= 0 кэш выключен: Get всегда промахивается, Set и Invalidate ничего не делают
type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewCache создает кэш
func NewCache(client redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

type slotRecord struct {
	Date   string `json:"date"`
	Hour   int    `json:"hour"`
	Status string `json:"status"`
}

// Get возвращает слоты из кэша; ok == false при промахе или выключенном кэше
func (c *Cache) Get(ctx context.Context, capsterID int64, statuses []domain.BookingStatus) ([]domain.BookedSlot, bool, error) {
	if !c.enabled() {
		return nil, false, nil
	}

	val, err := c.client.HGet(ctx, key(capsterID), field(statuses)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get: %v", ErrCache, err)
	}

	var records []slotRecord
	if err := json.Unmarshal([]byte(val), &records); err != nil {
		return nil, false, fmt.Errorf("%w: Get - decode: %v", ErrCache, err)
	}

	slots := make([]domain.BookedSlot, 0, len(records))
	for _, r := range records {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, false, fmt.Errorf("%w: Get - decode date: %v", ErrCache, err)
		}
		slots = append(slots, domain.BookedSlot{Date: date, Hour: r.Hour, Status: domain.BookingStatus(r.Status)})
	}

	return slots, true, nil
}

// Generation возвращает текущее поколение кэша капстера; его нужно получить до чтения БД
func (c *Cache) Generation(ctx context.Context, capsterID int64) (int64, error) {
	if !c.enabled() {
		return 0, nil
	}

	gen, err := c.client.Get(ctx, genKey(capsterID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Generation: %v", ErrCache, err)
	}
	return gen, nil
}

// Set сохраняет слоты капстера, прочитанные при поколении gen
// Если после чтения прошла инвалидация, слоты устарели и не сохраняются
func (c *Cache) Set(ctx context.Context, capsterID int64, gen int64, statuses []domain.BookingStatus, slots []domain.BookedSlot) error {
	if !c.enabled() {
		return nil
	}

	records := make([]slotRecord, 0, len(slots))
	for _, s := range slots {
		records = append(records, slotRecord{
			Date:   s.Date.Format(domain.DateFormat),
			Hour:   s.Hour,
			Status: string(s.Status),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCache, err)
	}

	k, gk := key(capsterID), genKey(capsterID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, gk).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, k, field(statuses), data)
			pipe.Expire(ctx, k, c.ttl)
			return nil
		})
		return err
	}, gk)

	// Конкурентная инвалидация: устаревшие слоты просто не попадают в кэш
	if errors.Is(err, errStaleGeneration) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: Set: %v", ErrCache, err)
	}

	return nil
}

// Invalidate удаляет кэш капстеров и увеличивает их поколение
func (c *Cache) Invalidate(ctx context.Context, capsterIDs ...int64) error {
	if !c.enabled() || len(capsterIDs) == 0 {
		return nil
	}

	pipe := c.client.TxPipeline()
	for _, id := range capsterIDs {
		pipe.Incr(ctx, genKey(id))
		pipe.Del(ctx, key(id))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCache, err)
	}
	return nil
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

// Hash tag {id} держит оба ключа капстера в одном слоте redis cluster, иначе WATCH не работает
func key(capsterID int64) string {
	return fmt.Sprintf("%s{%d}", keyPrefix, capsterID)
}

func genKey(capsterID int64) string {
	return fmt.Sprintf("%s{%d}", genPrefix, capsterID)
}

// field нормализует набор статусов, чтобы порядок в запросе не влиял на ключ
func field(statuses []domain.BookingStatus) string {
	if len(statuses) == 0 {
		statuses = domain.ActiveStatuses
	}
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}
