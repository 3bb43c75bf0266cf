// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"time"

	"github.com/curioswitch/go-curiostack/config"
)

type Firebase struct {
	// APIKey is the web API key of the Firebase project, used to sign in with
	// email and password.
	APIKey string `koanf:"apiKey"`
}

type Storage struct {
	// PublicBucket is the bucket recipe photos are uploaded to. Defaults to
	// <project>-public.
	PublicBucket string `koanf:"publicBucket"`
}

type Catalog struct {
	// MaxLookups bounds the concurrent homemaker lookups of one catalog query.
	MaxLookups int `koanf:"maxLookups"`
}

type Payment struct {
	// MaxTries is the number of times a charge is checked before it is left pending.
	MaxTries uint `koanf:"maxTries"`

	// IntervalMillis is the initial wait between checks of a charge.
	IntervalMillis int `koanf:"intervalMillis"`
}

// Interval returns IntervalMillis as a duration.
func (p Payment) Interval() time.Duration {
	return time.Duration(p.IntervalMillis) * time.Millisecond
}

type Delivery struct {
	// TimeZone is the IANA zone delivery dates are in, e.g. Asia/Kolkata.
	TimeZone string `koanf:"timeZone"`
}

type Config struct {
	config.Common

	Firebase Firebase `koanf:"firebase"`
	Storage  Storage  `koanf:"storage"`
	Catalog  Catalog  `koanf:"catalog"`
	Payment  Payment  `koanf:"payment"`
	Delivery Delivery `koanf:"delivery"`
}

// PublicBucket returns the configured public bucket or the project default.
func (c *Config) PublicBucket() string {
	if c.Storage.PublicBucket != "" {
		return c.Storage.PublicBucket
	}
	return c.Google.Project + "-public"
}
