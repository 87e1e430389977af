package redisdb

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adscope/keyword-guardian-api/internal/config"
)

// NewClient cria uma conexão com o Redis e valida com um ping.
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// incrWithExpiryScript incrementa o contador e, se for o primeiro incremento
// da janela, define a expiração, tudo em uma única operação atômica no servidor,
// para que dois workers nunca observem ambos "abaixo do limite" por uma
// leitura seguida de escrita separadas.
var incrWithExpiryScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
    redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// CounterStore implementa o contador compartilhado com expiração usado pelo
// limitador de taxa por tenant.
type CounterStore struct {
	client *redis.Client
}

func NewCounterStore(client *redis.Client) *CounterStore {
	return &CounterStore{client: client}
}

// IncrWithExpiry incrementa atomicamente o contador da chave, fixando a
// expiração da janela no primeiro incremento, e retorna o valor resultante.
func (s *CounterStore) IncrWithExpiry(ctx context.Context, key string, window time.Duration) (int64, error) {
	result, err := incrWithExpiryScript.Run(ctx, s.client, []string{key}, window.Milliseconds()).Int64()
	if err != nil {
		return 0, err
	}

	return result, nil
}

// TTL retorna o tempo restante da janela corrente da chave.
func (s *CounterStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	return s.client.TTL(ctx, key).Result()
}
