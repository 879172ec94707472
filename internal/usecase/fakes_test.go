package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/infrastructure/mail"
	"goldenwok/pkg/errors"
)

// In-memory repository fakes with the same contracts as the Firestore
// implementations, including the duplicate-insert conflict on ratings and
// the atomic vote toggle on reviews.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByName(ctx context.Context, name string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByVerificationToken(ctx context.Context, hashedToken string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.EmailVerificationToken != "" && u.EmailVerificationToken == hashedToken {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByResetToken(ctx context.Context, hashedToken string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetPasswordToken != "" && u.ResetPasswordToken == hashedToken {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product

	setRatingValueErr error
	removeRatingsErr  error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Media == nil {
		product.Media = []string{}
	}
	if product.RatingIDs == nil {
		product.RatingIDs = []string{}
	}
	if product.ReviewIDs == nil {
		product.ReviewIDs = []string{}
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		if p.Category == category {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) AppendRating(ctx context.Context, productID, ratingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	for _, id := range p.RatingIDs {
		if id == ratingID {
			return nil
		}
	}
	p.RatingIDs = append(p.RatingIDs, ratingID)
	return nil
}

func (r *fakeProductRepo) RemoveRatings(ctx context.Context, productID string, ratingIDs []string) error {
	if r.removeRatingsErr != nil {
		return r.removeRatingsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	drop := make(map[string]bool, len(ratingIDs))
	for _, id := range ratingIDs {
		drop[id] = true
	}
	kept := p.RatingIDs[:0]
	for _, id := range p.RatingIDs {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	p.RatingIDs = kept
	return nil
}

func (r *fakeProductRepo) AppendReview(ctx context.Context, productID, reviewID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	for _, id := range p.ReviewIDs {
		if id == reviewID {
			return nil
		}
	}
	p.ReviewIDs = append(p.ReviewIDs, reviewID)
	return nil
}

func (r *fakeProductRepo) RemoveReview(ctx context.Context, productID, reviewID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	kept := p.ReviewIDs[:0]
	for _, id := range p.ReviewIDs {
		if id != reviewID {
			kept = append(kept, id)
		}
	}
	p.ReviewIDs = kept
	return nil
}

func (r *fakeProductRepo) SetRatingValue(ctx context.Context, productID string, value float64) error {
	if r.setRatingValueErr != nil {
		return r.setRatingValueErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	p.RatingValue = value
	return nil
}

type fakeRatingRepo struct {
	mu      sync.Mutex
	ratings map[string]*entity.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[string]*entity.Rating)}
}

func (r *fakeRatingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ratings[rating.ID]; ok {
		return errors.Conflict("Rating already exists for this product and user", nil)
	}
	cp := *rating
	r.ratings[rating.ID] = &cp
	return nil
}

func (r *fakeRatingRepo) GetByID(ctx context.Context, id string) (*entity.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.ratings[id]
	if !ok {
		return nil, errors.NotFound("Rating", nil)
	}
	cp := *rt
	return &cp, nil
}

func (r *fakeRatingRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Rating, error) {
	return r.GetByID(ctx, entity.RatingPairID(productID, userID))
}

func (r *fakeRatingRepo) List(ctx context.Context) ([]*entity.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Rating, 0, len(r.ratings))
	for _, rt := range r.ratings {
		cp := *rt
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRatingRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Rating
	for _, rt := range r.ratings {
		if rt.ProductID == productID {
			cp := *rt
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRatingRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Rating
	for _, rt := range r.ratings {
		if rt.UserID == userID {
			cp := *rt
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRatingRepo) Update(ctx context.Context, rating *entity.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ratings[rating.ID]; !ok {
		return errors.NotFound("Rating", nil)
	}
	cp := *rating
	r.ratings[rating.ID] = &cp
	return nil
}

func (r *fakeRatingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ratings[id]; !ok {
		return errors.NotFound("Rating", nil)
	}
	delete(r.ratings, id)
	return nil
}

func (r *fakeRatingRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, rt := range r.ratings {
		if rt.UserID == userID {
			delete(r.ratings, id)
		}
	}
	return nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*entity.Review

	deleteByUserErr error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*entity.Review)}
}

func cloneReview(r *entity.Review) *entity.Review {
	cp := *r
	cp.Images = append([]string(nil), r.Images...)
	cp.LikedBy = append([]string(nil), r.LikedBy...)
	cp.DislikedBy = append([]string(nil), r.DislikedBy...)
	cp.ReplyIDs = append([]string(nil), r.ReplyIDs...)
	return &cp
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.LikedBy == nil {
		review.LikedBy = []string{}
	}
	if review.DislikedBy == nil {
		review.DislikedBy = []string{}
	}
	if review.ReplyIDs == nil {
		review.ReplyIDs = []string{}
	}
	review.SyncVoteCounts()
	r.reviews[review.ID] = cloneReview(review)
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return cloneReview(rv), nil
}

func (r *fakeReviewRepo) List(ctx context.Context) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		out = append(out, cloneReview(rv))
	}
	return out, nil
}

func (r *fakeReviewRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Review
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, cloneReview(rv))
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[review.ID]; !ok {
		return errors.NotFound("Review", nil)
	}
	r.reviews[review.ID] = cloneReview(review)
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[id]; !ok {
		return errors.NotFound("Review", nil)
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) DeleteByUser(ctx context.Context, userID string) error {
	if r.deleteByUserErr != nil {
		return r.deleteByUserErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, rv := range r.reviews {
		if rv.UserID == userID {
			delete(r.reviews, id)
		}
	}
	return nil
}

func (r *fakeReviewRepo) ToggleVote(ctx context.Context, reviewID, userID string, kind entity.VoteKind) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.reviews[reviewID]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	rv.ApplyVoteToggle(userID, kind)
	return cloneReview(rv), nil
}

func (r *fakeReviewRepo) RemoveUserVotes(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		rv.LikedBy = removeString(rv.LikedBy, userID)
		rv.DislikedBy = removeString(rv.DislikedBy, userID)
	}
	return nil
}

func (r *fakeReviewRepo) ResyncVoteCounts(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		rv.SyncVoteCounts()
	}
	return nil
}

func (r *fakeReviewRepo) AppendReply(ctx context.Context, reviewID, replyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.reviews[reviewID]
	if !ok {
		return errors.NotFound("Review", nil)
	}
	for _, id := range rv.ReplyIDs {
		if id == replyID {
			return nil
		}
	}
	rv.ReplyIDs = append(rv.ReplyIDs, replyID)
	return nil
}

func (r *fakeReviewRepo) RemoveReply(ctx context.Context, reviewID, replyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.reviews[reviewID]
	if !ok {
		return errors.NotFound("Review", nil)
	}
	rv.ReplyIDs = removeString(rv.ReplyIDs, replyID)
	return nil
}

type fakeReplyRepo struct {
	mu      sync.Mutex
	replies map[string]*entity.Reply
}

func newFakeReplyRepo() *fakeReplyRepo {
	return &fakeReplyRepo{replies: make(map[string]*entity.Reply)}
}

func (r *fakeReplyRepo) Create(ctx context.Context, reply *entity.Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reply.ID == "" {
		reply.ID = uuid.New().String()
	}
	cp := *reply
	r.replies[reply.ID] = &cp
	return nil
}

func (r *fakeReplyRepo) GetByID(ctx context.Context, id string) (*entity.Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rp, ok := r.replies[id]
	if !ok {
		return nil, errors.NotFound("Reply", nil)
	}
	cp := *rp
	return &cp, nil
}

func (r *fakeReplyRepo) ListByReview(ctx context.Context, reviewID string) ([]*entity.Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Reply
	for _, rp := range r.replies {
		if rp.ReviewID == reviewID {
			cp := *rp
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeReplyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.replies[id]; !ok {
		return errors.NotFound("Reply", nil)
	}
	delete(r.replies, id)
	return nil
}

func (r *fakeReplyRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, rp := range r.replies {
		if rp.UserID == userID {
			delete(r.replies, id)
		}
	}
	return nil
}

// fakeMailer records outbound messages instead of sending them.
type fakeMailer struct {
	mu       sync.Mutex
	messages []*mail.Message
	sendErr  error
}

func (m *fakeMailer) Send(ctx context.Context, msg *mail.Message) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *fakeMailer) last() *mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return nil
	}
	return m.messages[len(m.messages)-1]
}

func removeString(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
