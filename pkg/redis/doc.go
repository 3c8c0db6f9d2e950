// Package redis opens the connection to the Redis server that holds shared
// message templates, stored as a hash of rule name to template:
//
//	HSET rulekit:messages required ":label is required"
//
// Connect parses RULEKIT_REDIS_URL style URLs and pings with retries until
// the connect timeout runs out. The returned client is passed to
// messages.LoadRedis, and Healthcheck turns it into a readiness check for
// httpserver.HealthCheckHandler.
package redis
