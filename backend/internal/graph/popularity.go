package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	apperrors "hobbygraph/backend/pkg/errors"
)

// ============================================================================
// Popularity Scoring
// ============================================================================

// popularityScore computes:
//
//	score = unique friend count + 0.5 * total hobbies shared with friends
//
// The shared count is summed per friend, so a hobby shared with two friends
// counts twice.
func popularityScore(hobbies []string, friendHobbies [][]string) float64 {
	own := make(map[string]struct{}, len(hobbies))
	for _, h := range hobbies {
		own[h] = struct{}{}
	}

	shared := 0
	for _, fh := range friendHobbies {
		for _, h := range fh {
			if _, ok := own[h]; ok {
				shared++
			}
		}
	}

	return float64(len(friendHobbies)) + float64(shared)*0.5
}

// RecomputePopularity recalculates and persists a user's popularity score
// from its current friend set. A missing user yields (0, nil): recomputes
// trail mutations and may race a concurrent delete, so a late recompute on a
// deleted user is not treated as a failure.
func (r *Repository) RecomputePopularity(ctx context.Context, userID string) (float64, error) {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	score, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		load, err := tx.Run(ctx, `
			MATCH (u:User {id: $userID})
			RETURN coalesce(u.hobbies, []) AS hobbies,
			       [(u)-[:FRIEND]-(f:User) | coalesce(f.hobbies, [])] AS friend_hobbies
		`, map[string]interface{}{"userID": userID})
		if err != nil {
			return nil, err
		}

		if !load.Next(ctx) {
			if err := load.Err(); err != nil {
				return nil, err
			}
			// User vanished between mutation and recompute
			return 0.0, nil
		}

		record := load.Record()
		hobbies := getStringSliceFromRecord(record, "hobbies")
		friendHobbies := getStringSliceListFromRecord(record, "friend_hobbies")

		score := popularityScore(hobbies, friendHobbies)

		_, err = tx.Run(ctx, `
			MATCH (u:User {id: $userID})
			SET u.popularity_score = $score
		`, map[string]interface{}{
			"userID": userID,
			"score":  score,
		})
		if err != nil {
			return nil, err
		}
		return score, nil
	})
	if err != nil {
		return 0, apperrors.NewGraphQueryFailed("recompute popularity", err)
	}

	result := score.(float64)
	r.logger.Debug("Popularity recomputed",
		zap.String("user_id", userID),
		zap.Float64("score", result),
	)
	return result, nil
}

// recomputePair recomputes both endpoints of a link/unlink
func (r *Repository) recomputePair(ctx context.Context, userID, friendID string) error {
	return r.recomputeAround(ctx, userID, []string{friendID})
}

// recomputeAround recomputes a user and each of its affected neighbors. The
// recomputes run concurrently; ordering among them is irrelevant as long as
// each one follows the mutation that invalidated it.
func (r *Repository) recomputeAround(ctx context.Context, userID string, neighborIDs []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	ids := append([]string{userID}, neighborIDs...)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			_, err := r.RecomputePopularity(gctx, id)
			return err
		})
	}

	return g.Wait()
}
