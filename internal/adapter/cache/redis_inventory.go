package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/prasadhande/pizza-factory/internal/entity"
	"github.com/prasadhande/pizza-factory/internal/usecase"
)

const stockKeyPrefix = "stock:"

// consumeScript checks and decrements in one round trip so a Consume
// call can never leave the counter negative.
var consumeScript = redis.NewScript(`
local have = tonumber(redis.call("GET", KEYS[1]) or "0")
local want = tonumber(ARGV[1])
if have < want then
  return -1
end
return redis.call("DECRBY", KEYS[1], want)
`)

// RedisInventory keeps the stock ledger as one integer counter per
// ingredient.
type RedisInventory struct {
	rdb *redis.Client
}

func NewRedisInventory(rdb *redis.Client) *RedisInventory {
	return &RedisInventory{rdb: rdb}
}

func (r *RedisInventory) HasStock(ctx context.Context, ingredient string) (bool, error) {
	val, err := r.rdb.Get(ctx, stockKeyPrefix+ingredient).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stock check %q: %w", ingredient, err)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return false, fmt.Errorf("stock counter %q: %w", ingredient, err)
	}
	return n > 0, nil
}

func (r *RedisInventory) Consume(ctx context.Context, ingredient string, qty int) error {
	res, err := consumeScript.Run(ctx, r.rdb, []string{stockKeyPrefix + ingredient}, qty).Int64()
	if err != nil {
		return fmt.Errorf("consume %q: %w", ingredient, err)
	}
	if res < 0 {
		return &entity.InsufficientStockError{Ingredient: ingredient}
	}
	return nil
}

func (r *RedisInventory) Restock(ctx context.Context, ingredient string, qty int) error {
	if err := r.rdb.IncrBy(ctx, stockKeyPrefix+ingredient, int64(qty)).Err(); err != nil {
		return fmt.Errorf("restock %q: %w", ingredient, err)
	}
	return nil
}

var _ usecase.Inventory = (*RedisInventory)(nil)
