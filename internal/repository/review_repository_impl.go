package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
	domainRepo "salon-booking/internal/domain/repository"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

type reviewRepository struct {
	restRepository
}

func NewReviewRepository(client *backend.Client, cache service.ListCache, log *logrus.Logger) domainRepo.ReviewRepository {
	return &reviewRepository{restRepository{client: client, cache: cache, log: log, kind: entity.KindReview}}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	return service.CachedList(ctx, r.cache, r.log, r.kind, "public", func(ctx context.Context) ([]entity.Review, error) {
		env, err := r.client.Get(ctx, "/reviews")
		if err != nil {
			return nil, err
		}
		var reviews []entity.Review
		if err := backend.DecodeList(env.Data, "reviews", &reviews); err != nil {
			return nil, err
		}
		return reviews, nil
	})
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) (string, error) {
	return mutate(r.client.Post(ctx, "/reviews", review))
}
