package cache

import (
	"time"

	"github.com/gomodule/redigo/redis"
)

func Get(key string, conn redis.Conn) ([]byte, error) {
	return redis.Bytes(conn.Do("GET", key))
}

func Del(key string, conn redis.Conn) error {
	_, err := conn.Do("DEL", key)
	return err
}

// Set stores value under key. A zero ttl keeps the key forever.
func Set(key string, value interface{}, ttl time.Duration, conn redis.Conn) error {
	args := redis.Args{}.Add(key).Add(value)
	if ttl > 0 {
		args = args.Add("EX", int(ttl/time.Second))
	}
	reply, err := redis.String(conn.Do("SET", args...))
	if err != nil {
		return err
	}
	if reply != "OK" {
		return redis.Error(reply)
	}
	return nil
}

func SADD(key, member string, conn redis.Conn) error {
	_, err := conn.Do("SADD", key, member)
	return err
}

func SREM(key, member string, conn redis.Conn) error {
	_, err := conn.Do("SREM", key, member)
	return err
}

func SMEMBERS(key string, conn redis.Conn) ([]string, error) {
	return redis.Strings(conn.Do("SMEMBERS", key))
}
