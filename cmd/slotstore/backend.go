// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/slotstore"
	badgerstore "github.com/poiesic/slotstore/store/badger"
	redisstore "github.com/poiesic/slotstore/store/redis"
)

// envConfig is the environment-variable configuration. CLI flags take
// precedence over it.
type envConfig struct {
	DBPath      string `env:"SLOTSTORE_DB"`
	RedisAddr   string `env:"SLOTSTORE_REDIS_ADDR"`
	RedisDB     int    `env:"SLOTSTORE_REDIS_DB"`
	RedisPrefix string `env:"SLOTSTORE_REDIS_PREFIX"`
}

func loadEnvConfig() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// awaitStore adapts the asynchronous Redis store to the synchronous
// Store contract. The CLI is a one-shot process; awaiting each pending
// value is the natural mode here.
type awaitStore struct {
	ctx   context.Context
	store *redisstore.Store
}

var (
	_ slotstore.Store     = awaitStore{}
	_ slotstore.KeyLister = awaitStore{}
)

func (a awaitStore) GetItem(key string) (string, bool, error) {
	item, err := a.store.GetItem(a.ctx, key).Await(a.ctx)
	if err != nil {
		return "", false, err
	}
	return item.Value, item.Found, nil
}

func (a awaitStore) SetItem(key, value string) error {
	_, err := a.store.SetItem(a.ctx, key, value).Await(a.ctx)
	return err
}

func (a awaitStore) RemoveItem(key string) error {
	_, err := a.store.RemoveItem(a.ctx, key).Await(a.ctx)
	return err
}

func (a awaitStore) Clear() error {
	_, err := a.store.Clear(a.ctx).Await(a.ctx)
	return err
}

func (a awaitStore) Keys() ([]string, error) {
	return a.store.Keys(a.ctx).Await(a.ctx)
}

// openStore opens the configured backend: Redis when an address is
// set, BadgerDB otherwise. The returned cleanup must be called when
// done.
func openStore(c *cli.Context, cfg envConfig) (slotstore.Store, func() error, error) {
	addr := c.String("redis")
	if addr == "" {
		addr = cfg.RedisAddr
	}
	if addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   cfg.RedisDB,
		})
		store := redisstore.New(client,
			redisstore.WithPrefix(cfg.RedisPrefix),
		)
		return awaitStore{ctx: c.Context, store: store}, client.Close, nil
	}

	path := c.String("db")
	if path == "" {
		path = cfg.DBPath
	}
	if path == "" {
		return nil, nil, fmt.Errorf("no backend configured: set --db, --redis, SLOTSTORE_DB, or SLOTSTORE_REDIS_ADDR")
	}
	store, err := badgerstore.Open(path, false)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return store, store.Close, nil
}
