package usecase

import (
	"context"
	"errors"

	"salon-booking/internal/converter"
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/domain/repository"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrContactNotFound = errors.New("contact not found")

const (
	contactSentMessage    = "Gửi liên hệ thành công"
	contactUpdatedMessage = "Cập nhật liên hệ thành công"
	contactDeletedMessage = "Xóa liên hệ thành công"
)

type ContactUsecase interface {
	Create(ctx context.Context, req *dto.ContactRequest) (string, error)
	List(ctx context.Context) (*dto.ContactListResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateContactRequest) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}

type contactUsecase struct {
	log         *logrus.Logger
	contactRepo repository.ContactRepository
	activity    service.ActivityService
}

func NewContactUsecase(log *logrus.Logger, contactRepo repository.ContactRepository, activity service.ActivityService) ContactUsecase {
	return &contactUsecase{
		log:         log,
		contactRepo: contactRepo,
		activity:    activity,
	}
}

// Create submits the public contact form. No login is required.
func (u *contactUsecase) Create(ctx context.Context, req *dto.ContactRequest) (string, error) {
	message, err := u.contactRepo.Create(ctx, &entity.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		u.log.Warnf("Failed to submit contact from %s: %+v", req.Email, err)
		return "", err
	}

	if err := u.contactRepo.Invalidate(ctx, entity.KindContact, ""); err != nil {
		u.log.Warnf("Failed to invalidate contact cache: %+v", err)
	}
	return orDefault(message, contactSentMessage), nil
}

func (u *contactUsecase) List(ctx context.Context) (*dto.ContactListResponse, error) {
	contacts, err := u.contactRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list contacts: %+v", err)
		return nil, err
	}
	return &dto.ContactListResponse{
		Contacts: converter.ContactsToResponses(contacts),
		Total:    len(contacts),
	}, nil
}

// UpdateStatus resends the stored contact with its new status, since the
// backend replaces the whole document.
func (u *contactUsecase) UpdateStatus(ctx context.Context, id string, req *dto.UpdateContactRequest) (string, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return "", err
	}

	contacts, err := u.contactRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list contacts: %+v", err)
		return "", err
	}

	var contact *entity.Contact
	for i := range contacts {
		if contacts[i].ID == id {
			contact = &contacts[i]
			break
		}
	}
	if contact == nil {
		return "", ErrContactNotFound
	}

	updated := *contact
	updated.ID = ""
	updated.Status = req.Status

	message, err := u.contactRepo.Update(ctx, id, &updated)
	if err != nil {
		u.log.Warnf("Failed to update contact %s: %+v", id, err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindContact, id, "update", err)
		return "", err
	}
	u.activity.LogAccepted(ctx, identity.UserID, entity.KindContact, id, "update")

	if err := u.contactRepo.Invalidate(ctx, entity.KindContact, id); err != nil {
		u.log.Warnf("Failed to invalidate contact cache: %+v", err)
	}
	return orDefault(message, contactUpdatedMessage), nil
}

func (u *contactUsecase) Delete(ctx context.Context, id string) (string, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return "", err
	}

	message, err := u.contactRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete contact %s: %+v", id, err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindContact, id, "delete", err)
		return "", err
	}
	u.activity.LogAccepted(ctx, identity.UserID, entity.KindContact, id, "delete")

	if err := u.contactRepo.Invalidate(ctx, entity.KindContact, id); err != nil {
		u.log.Warnf("Failed to invalidate contact cache: %+v", err)
	}
	return orDefault(message, contactDeletedMessage), nil
}
