package graph

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	apperrors "hobbygraph/backend/pkg/errors"
)

// ============================================================================
// Friendship Operations
// ============================================================================
//
// A friendship is a single undirected FRIEND relationship between two user
// nodes, so both endpoints' friend sets change in one write. The precondition
// checks and the mutation share one managed transaction: the driver retries
// the whole unit on transient write conflicts, while domain errors returned
// from the transaction function abort it without retry.

// LinkUsers creates a friendship between two users and recomputes both
// endpoints' popularity.
func (r *Repository) LinkUsers(ctx context.Context, userID, friendID string) error {
	if userID == friendID {
		return apperrors.NewSelfLink(userID)
	}

	session := r.writeSession(ctx)
	defer session.Close(ctx)

	now := time.Now().UTC().Format(time.RFC3339)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		check, err := tx.Run(ctx, `
			OPTIONAL MATCH (a:User {id: $userID})
			OPTIONAL MATCH (b:User {id: $friendID})
			RETURN a.id AS aid, b.id AS bid
		`, map[string]interface{}{
			"userID":   userID,
			"friendID": friendID,
		})
		if err != nil {
			return nil, err
		}

		record, err := check.Single(ctx)
		if err != nil {
			return nil, err
		}

		if getStringFromRecord(record, "aid") == "" {
			return nil, apperrors.NewUserNotFound(userID)
		}
		if getStringFromRecord(record, "bid") == "" {
			return nil, apperrors.NewUserNotFound(friendID)
		}

		// Either direction counts: an asymmetric leftover is still "linked"
		existing, err := tx.Run(ctx, `
			MATCH (:User {id: $userID})-[f:FRIEND]-(:User {id: $friendID})
			RETURN count(f) AS links
		`, map[string]interface{}{
			"userID":   userID,
			"friendID": friendID,
		})
		if err != nil {
			return nil, err
		}

		linkRecord, err := existing.Single(ctx)
		if err != nil {
			return nil, err
		}
		if getIntFromRecord(linkRecord, "links") > 0 {
			return nil, apperrors.NewAlreadyLinked(userID, friendID)
		}

		_, err = tx.Run(ctx, `
			MATCH (a:User {id: $userID}), (b:User {id: $friendID})
			CREATE (a)-[:FRIEND {created_at: datetime($now)}]->(b)
			SET a.updated_at = datetime($now), b.updated_at = datetime($now)
		`, map[string]interface{}{
			"userID":   userID,
			"friendID": friendID,
			"now":      now,
		})
		return nil, err
	})
	if err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound) || apperrors.IsErrorType(err, apperrors.ErrorTypeConflict) {
			return err
		}
		return apperrors.NewGraphQueryFailed("link users", err)
	}

	if err := r.recomputePair(ctx, userID, friendID); err != nil {
		return err
	}

	r.logger.Info("Users linked",
		zap.String("user_id", userID),
		zap.String("friend_id", friendID),
	)
	return nil
}

// UnlinkUsers removes the friendship between two users. Both users must
// exist, but removing an edge that is not there is a no-op, not an error.
func (r *Repository) UnlinkUsers(ctx context.Context, userID, friendID string) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	now := time.Now().UTC().Format(time.RFC3339)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		check, err := tx.Run(ctx, `
			OPTIONAL MATCH (a:User {id: $userID})
			OPTIONAL MATCH (b:User {id: $friendID})
			RETURN a.id AS aid, b.id AS bid
		`, map[string]interface{}{
			"userID":   userID,
			"friendID": friendID,
		})
		if err != nil {
			return nil, err
		}

		record, err := check.Single(ctx)
		if err != nil {
			return nil, err
		}

		if getStringFromRecord(record, "aid") == "" {
			return nil, apperrors.NewUserNotFound(userID)
		}
		if getStringFromRecord(record, "bid") == "" {
			return nil, apperrors.NewUserNotFound(friendID)
		}

		_, err = tx.Run(ctx, `
			MATCH (a:User {id: $userID})-[f:FRIEND]-(b:User {id: $friendID})
			SET a.updated_at = datetime($now), b.updated_at = datetime($now)
			DELETE f
		`, map[string]interface{}{
			"userID":   userID,
			"friendID": friendID,
			"now":      now,
		})
		return nil, err
	})
	if err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound) {
			return err
		}
		return apperrors.NewGraphQueryFailed("unlink users", err)
	}

	if err := r.recomputePair(ctx, userID, friendID); err != nil {
		return err
	}

	r.logger.Info("Users unlinked",
		zap.String("user_id", userID),
		zap.String("friend_id", friendID),
	)
	return nil
}
