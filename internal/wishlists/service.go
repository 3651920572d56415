package wishlists

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wishlane-app/wishlane-backend/internal/users"
	pkgAuth "github.com/wishlane-app/wishlane-backend/pkg/auth"
	"github.com/wishlane-app/wishlane-backend/pkg/db/models"
	"github.com/wishlane-app/wishlane-backend/pkg/enums"
	pkgerrors "github.com/wishlane-app/wishlane-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes business rules for wishlist management.
type Service interface {
	Create(ctx context.Context, actor pkgAuth.Identity, req CreateWishlistRequest) (*WishlistDTO, error)
	List(ctx context.Context, actor pkgAuth.Identity) ([]WishlistDTO, error)
	Get(ctx context.Context, actor pkgAuth.Identity, id uuid.UUID) (*WishlistDetailDTO, error)
	Update(ctx context.Context, actor pkgAuth.Identity, id uuid.UUID, req UpdateWishlistRequest) (*WishlistDTO, error)
	Delete(ctx context.Context, actor pkgAuth.Identity, id uuid.UUID) error
	Invite(ctx context.Context, actor pkgAuth.Identity, id uuid.UUID, req InviteRequest) (*InviteDTO, error)
	AddItem(ctx context.Context, actor pkgAuth.Identity, wishlistID uuid.UUID, req AddItemRequest) (*ItemDTO, error)
	RemoveItem(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) error
	ListItems(ctx context.Context, actor pkgAuth.Identity, wishlistID uuid.UUID) ([]ItemDTO, error)
}

type repository interface {
	CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error
	FindWishlistByID(ctx context.Context, id uuid.UUID) (*models.Wishlist, error)
	ListWishlistsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Wishlist, error)
	UpdateWishlist(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Wishlist, error)
	DeleteWishlistCascade(ctx context.Context, id uuid.UUID) error
	CreateItem(ctx context.Context, item *models.WishlistItem) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*models.WishlistItem, error)
	ListItemsByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]models.WishlistItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	CreateInvite(ctx context.Context, invite *models.WishlistInvite) error
	FindInvite(ctx context.Context, wishlistID uuid.UUID, email string) (*models.WishlistInvite, error)
	HasAcceptedInvite(ctx context.Context, wishlistID uuid.UUID, email string) (bool, error)
}

type profileDirectory interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ServiceParams groups dependencies for the wishlists service.
type ServiceParams struct {
	Repo     repository
	Profiles profileDirectory
}

type service struct {
	repo     repository
	profiles profileDirectory
}

// NewService builds a wishlists service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("wishlists repository is required")
	}
	if params.Profiles == nil {
		return nil, fmt.Errorf("profile directory is required")
	}
	return &service{repo: params.Repo, profiles: params.Profiles}, nil
}

// Create registers a new wishlist owned by the actor.
func (s *service) Create(ctx context.Context, actor pkgAuth.Identity, req CreateWishlistRequest) (*WishlistDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	wishlist := &models.Wishlist{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedBy:   actor.UserID,
	}
	if err := s.repo.CreateWishlist(ctx, wishlist); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create wishlist")
	}

	dto := wishlistFromModel(wishlist)
	return &dto, nil
}

// List returns the wishlists the actor owns, newest first.
func (s *service) List(ctx context.Context, actor pkgAuth.Identity) ([]WishlistDTO, error) {
	wishlists, err := s.repo.ListWishlistsByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlists")
	}
	dtos := make([]WishlistDTO, 0, len(wishlists))
	for i := range wishlists {
		dtos = append(dtos, wishlistFromModel(&wishlists[i]))
	}
	return dtos, nil
}

// Get returns the wishlist detail with items and author profiles. Readable
// by the owner and accepted invitees.
func (s *service) Get(ctx context.Context, actor pkgAuth.Identity, id uuid.UUID) (*WishlistDetailDTO, error) {
	wishlist, err := s.loadWishlist(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCanView(ctx, wishlist, actor); err != nil {
		return nil, err
	}

	items, err := s.repo.ListItemsByWishlist(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}

	detail := &WishlistDetailDTO{
		WishlistDTO: wishlistFromModel(wishlist),
		Items:       make([]ItemDTO, 0, len(items)),
	}

	profileIDs := []uuid.UUID{wishlist.CreatedBy}
	for i := range items {
		profileIDs = append(profileIDs, items[i].AddedBy)
	}
	profilesByID, err := s.lookupProfiles(ctx, profileIDs)
	if err != nil {
		return nil, err
	}

	if owner, ok := profilesByID[wishlist.CreatedBy]; ok {
		detail.Owner = owner
	}
	for i := range items {
		dto := itemFromModel(&items[i])
		if author, ok := profilesByID[items[i].AddedBy]; ok {
			dto.AddedByUser = author
		}
		detail.Items = append(detail.Items, dto)
	}
	return detail, nil
}

// Update patches name and/or description. Owner only.
func (s *service) Update(ctx context.Context, actor pkgAuth.Identity, id uuid.UUID, req UpdateWishlistRequest) (*WishlistDTO, error) {
	wishlist, err := s.loadWishlist(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanModify(wishlist.CreatedBy, actor.UserID) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only the owner can update this wishlist")
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}

	updated, err := s.repo.UpdateWishlist(ctx, id, updates)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update wishlist")
	}
	dto := wishlistFromModel(updated)
	return &dto, nil
}

// Delete removes the wishlist and all dependent rows. Owner only.
func (s *service) Delete(ctx context.Context, actor pkgAuth.Identity, id uuid.UUID) error {
	wishlist, err := s.loadWishlist(ctx, id)
	if err != nil {
		return err
	}
	if !CanModify(wishlist.CreatedBy, actor.UserID) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "only the owner can delete this wishlist")
	}
	if err := s.repo.DeleteWishlistCascade(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete wishlist")
	}
	return nil
}

// Invite grants read access to an email address. Owner only. If the email
// already belongs to a registered profile the grant is accepted immediately,
// otherwise it stays pending until that user signs up or logs in.
func (s *service) Invite(ctx context.Context, actor pkgAuth.Identity, id uuid.UUID, req InviteRequest) (*InviteDTO, error) {
	wishlist, err := s.loadWishlist(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanInvite(wishlist.CreatedBy, actor.UserID) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only the owner can invite others")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if email == strings.ToLower(actor.Email) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot invite yourself")
	}

	if _, err := s.repo.FindInvite(ctx, id, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already invited")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check existing invite")
	}

	invite := &models.WishlistInvite{
		WishlistID: id,
		Email:      email,
		InvitedBy:  actor.UserID,
		Status:     enums.InviteStatusPending,
	}

	registered, err := s.profiles.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check invited email")
	}
	if registered {
		now := time.Now().UTC()
		invite.Status = enums.InviteStatusAccepted
		invite.AcceptedAt = &now
	}

	if err := s.repo.CreateInvite(ctx, invite); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create invite")
	}
	dto := inviteFromModel(invite)
	return &dto, nil
}

// AddItem snapshots a product onto the wishlist. Owner and invitees may add.
func (s *service) AddItem(ctx context.Context, actor pkgAuth.Identity, wishlistID uuid.UUID, req AddItemRequest) (*ItemDTO, error) {
	wishlist, err := s.loadWishlist(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	invited, err := s.invited(ctx, wishlistID, actor)
	if err != nil {
		return nil, err
	}
	if !CanAddItem(wishlist.CreatedBy, actor.UserID, invited) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "no access to this wishlist")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if req.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}

	item := &models.WishlistItem{
		WishlistID:         wishlistID,
		ProductID:          req.ProductID,
		ProductTitle:       title,
		ProductPrice:       req.Price,
		ProductImage:       req.Image,
		ProductDescription: req.Description,
		ProductCategory:    req.Category,
		ProductRatingRate:  req.RatingRate,
		ProductRatingCount: req.RatingCount,
		AddedBy:            actor.UserID,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create item")
	}
	dto := itemFromModel(item)
	return &dto, nil
}

// RemoveItem deletes an item. Allowed for the list owner and for whoever
// added the item.
func (s *service) RemoveItem(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) error {
	wishlist, err := s.loadWishlist(ctx, wishlistID)
	if err != nil {
		return err
	}
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}
	if item.WishlistID != wishlistID {
		return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
	}
	if !CanRemoveItem(wishlist.CreatedBy, item.AddedBy, actor.UserID) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "cannot remove this item")
	}
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete item")
	}
	return nil
}

// ListItems returns the wishlist's items with author profiles attached.
func (s *service) ListItems(ctx context.Context, actor pkgAuth.Identity, wishlistID uuid.UUID) ([]ItemDTO, error) {
	wishlist, err := s.loadWishlist(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCanView(ctx, wishlist, actor); err != nil {
		return nil, err
	}

	items, err := s.repo.ListItemsByWishlist(ctx, wishlistID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}

	profileIDs := make([]uuid.UUID, 0, len(items))
	for i := range items {
		profileIDs = append(profileIDs, items[i].AddedBy)
	}
	profilesByID, err := s.lookupProfiles(ctx, profileIDs)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dto := itemFromModel(&items[i])
		if author, ok := profilesByID[items[i].AddedBy]; ok {
			dto.AddedByUser = author
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *service) loadWishlist(ctx context.Context, id uuid.UUID) (*models.Wishlist, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist id is required")
	}
	wishlist, err := s.repo.FindWishlistByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "wishlist not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	return wishlist, nil
}

func (s *service) ensureCanView(ctx context.Context, wishlist *models.Wishlist, actor pkgAuth.Identity) error {
	invited, err := s.invited(ctx, wishlist.ID, actor)
	if err != nil {
		return err
	}
	if !CanView(wishlist.CreatedBy, actor.UserID, invited) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "no access to this wishlist")
	}
	return nil
}

func (s *service) invited(ctx context.Context, wishlistID uuid.UUID, actor pkgAuth.Identity) (bool, error) {
	if actor.Email == "" {
		return false, nil
	}
	invited, err := s.repo.HasAcceptedInvite(ctx, wishlistID, strings.ToLower(actor.Email))
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check invite")
	}
	return invited, nil
}

func (s *service) lookupProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*users.ProfileDTO, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	profiles, err := s.profiles.FindByIDs(ctx, unique)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profiles")
	}

	byID := make(map[uuid.UUID]*users.ProfileDTO, len(profiles))
	for i := range profiles {
		dto := users.FromModel(&profiles[i])
		byID[profiles[i].ID] = &dto
	}
	return byID, nil
}
