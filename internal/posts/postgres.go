package posts

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	postmodels "io.winapps.foodshare/internal/models/post"
)

// querier is the subset of *pgxpool.Pool used here.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads posts from the food_posts table, newest first.
type PostgresSource struct {
	db querier
}

func NewPostgresSource(db querier) *PostgresSource {
	return &PostgresSource{db: db}
}

const listPostsQuery = `
	SELECT id, title, description, category, urgency, status, location, quantity,
		posted_at, expiry_time, donor_name, image_url,
		distance_km, priority_score, match_count, match_score, recipient
	FROM food_posts
	ORDER BY posted_at DESC, id
`

func (s *PostgresSource) ListPosts(ctx context.Context) ([]postmodels.FoodPost, error) {
	rows, err := s.db.Query(ctx, listPostsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query food posts: %w", err)
	}
	defer rows.Close()

	posts := make([]postmodels.FoodPost, 0)
	for rows.Next() {
		var (
			post       postmodels.FoodPost
			category   string
			urgency    string
			status     string
			expiryTime *time.Time
			donorName  *string
			imageURL   *string
			recipient  *string
		)
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Description,
			&category,
			&urgency,
			&status,
			&post.Location,
			&post.Quantity,
			&post.PostedAt,
			&expiryTime,
			&donorName,
			&imageURL,
			&post.Distance,
			&post.PriorityScore,
			&post.MatchCount,
			&post.MatchScore,
			&recipient,
		); err != nil {
			return nil, fmt.Errorf("failed to scan food post: %w", err)
		}

		post.Category = postmodels.Category(category)
		post.Urgency = postmodels.Urgency(urgency)
		post.Status = postmodels.Status(status)
		if expiryTime != nil {
			post.ExpiryTime = *expiryTime
		}
		if donorName != nil {
			post.DonorName = *donorName
		}
		if imageURL != nil {
			post.ImageURL = *imageURL
		}
		if recipient != nil {
			post.Recipient = *recipient
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read food posts: %w", err)
	}

	return posts, nil
}
