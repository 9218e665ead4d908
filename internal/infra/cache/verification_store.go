package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/verification"
	"museum-booking/internal/infra"

	"github.com/redis/go-redis/v9"
)

const (
	verificationKeyPrefix = "verification:"
	verificationTTL       = 30 * 24 * time.Hour
)

// Both scripts create the hash on first touch so the stores behave like the
// Postgres upsert. ARGV: booking_id, visitor_name, id_number, provenance,
// found (0|1), now_ms, ttl_seconds.
var ensureVerificationScript = redis.NewScript(`
	local key = KEYS[1]
	if redis.call('EXISTS', key) == 0 then
		redis.call('HSET', key,
			'booking_id', ARGV[1], 'visitor_name', ARGV[2], 'id_number', ARGV[3],
			'provenance', ARGV[4], 'found', 0, 'attempts', 0, 'created_at_ms', ARGV[6])
	elseif redis.call('HGET', key, 'provenance') == '' then
		redis.call('HSET', key, 'provenance', ARGV[4])
	end
	redis.call('EXPIRE', key, ARGV[7])
	return 1
`)

var recordAttemptScript = redis.NewScript(`
	local key = KEYS[1]
	if redis.call('EXISTS', key) == 0 then
		redis.call('HSET', key,
			'booking_id', ARGV[1], 'visitor_name', ARGV[2], 'id_number', ARGV[3],
			'provenance', ARGV[4], 'found', 0, 'attempts', 0, 'created_at_ms', ARGV[6])
	end
	redis.call('HINCRBY', key, 'attempts', 1)
	if ARGV[5] == '1' then
		redis.call('HSET', key, 'found', 1)
	end
	redis.call('HSET', key, 'last_attempt_at_ms', ARGV[6])
	redis.call('EXPIRE', key, ARGV[7])
	return redis.call('HGETALL', key)
`)

type VerificationStore struct {
	client redis.Cmdable
	logger *slog.Logger
}

func NewVerificationStore(client redis.Cmdable, logger *slog.Logger) *VerificationStore {
	return &VerificationStore{client: client, logger: logger}
}

func (s *VerificationStore) Ensure(ctx context.Context, rec *verification.Record) error {
	args := scriptArgs(rec, false, rec.CreatedAt())
	if err := ensureVerificationScript.Run(ctx, s.client, []string{key(rec.BookingID())}, args...).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to ensure verification record", err)
	}
	return nil
}

func (s *VerificationStore) RecordAttempt(ctx context.Context, rec *verification.Record, found bool, at time.Time) (*verification.Record, error) {
	args := scriptArgs(rec, found, at)
	vals, err := recordAttemptScript.Run(ctx, s.client, []string{key(rec.BookingID())}, args...).StringSlice()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to record verification attempt", err)
	}
	fields := make(map[string]string, len(vals)/2)
	for i := 0; i+1 < len(vals); i += 2 {
		fields[vals[i]] = vals[i+1]
	}
	out, err := recordFromHash(fields)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to decode verification record", err)
	}
	return out, nil
}

func (s *VerificationStore) FindByBookingID(ctx context.Context, bookingID string) (*verification.Record, error) {
	fields, err := s.client.HGetAll(ctx, key(bookingID)).Result()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to load verification record", err)
	}
	if len(fields) == 0 {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "verification record not found", nil)
	}
	out, err := recordFromHash(fields)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to decode verification record", err)
	}
	return out, nil
}

func key(bookingID string) string {
	return verificationKeyPrefix + bookingID
}

func scriptArgs(rec *verification.Record, found bool, at time.Time) []any {
	foundArg := "0"
	if found {
		foundArg = "1"
	}
	return []any{
		rec.BookingID(),
		rec.VisitorName(),
		rec.IDNumber(),
		rec.Provenance().String(),
		foundArg,
		at.UnixMilli(),
		int64(verificationTTL / time.Second),
	}
}

func recordFromHash(fields map[string]string) (*verification.Record, error) {
	attempts, err := strconv.Atoi(fields["attempts"])
	if err != nil {
		return nil, fmt.Errorf("attempts: %w", err)
	}
	createdMs, err := strconv.ParseInt(fields["created_at_ms"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("created_at_ms: %w", err)
	}

	var lastAttempt *time.Time
	if raw, ok := fields["last_attempt_at_ms"]; ok && raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("last_attempt_at_ms: %w", err)
		}
		t := time.UnixMilli(ms)
		lastAttempt = &t
	}

	return verification.ReconstructRecord(
		fields["booking_id"],
		fields["visitor_name"],
		fields["id_number"],
		booking.Provenance(fields["provenance"]),
		fields["found"] == "1",
		attempts,
		lastAttempt,
		time.UnixMilli(createdMs),
	), nil
}
