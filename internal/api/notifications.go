package api

import (
	"context"
	"net/http"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

func (c *Client) NotificationFeed(ctx context.Context, userID uint) Response[[]models.Notification] {
	return do[[]models.Notification](c, ctx, http.MethodGet, pathNotificationFeed(userID), nil)
}

func (c *Client) UnreadNotifications(ctx context.Context, userID uint) Response[[]models.Notification] {
	return do[[]models.Notification](c, ctx, http.MethodGet, pathNotificationUnread(userID), nil)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id uint) Response[struct{}] {
	return do[struct{}](c, ctx, http.MethodPatch, pathNotificationRead(id), nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID uint) Response[struct{}] {
	return do[struct{}](c, ctx, http.MethodPatch, pathNotificationReadAll(userID), nil)
}
