package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	notificationDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/notification"
	reportDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/report"
	rewardDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/reward"
)

func (c *Client) ListNotifications(ctx context.Context) ([]notificationDatamodel.Notification, error) {
	var out []notificationDatamodel.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) (*notificationDatamodel.Notification, error) {
	var out notificationDatamodel.Notification
	path := fmt.Sprintf("/notifications/%s/read", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPut, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) (*notificationDatamodel.MarkAllResponse, error) {
	var out notificationDatamodel.MarkAllResponse
	if err := c.do(ctx, http.MethodPut, "/notifications/mark-all-read", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRewards(ctx context.Context) ([]rewardDatamodel.Reward, error) {
	var out []rewardDatamodel.Reward
	if err := c.do(ctx, http.MethodGet, "/rewards", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RedeemReward spends the user's points and returns the remaining balance.
func (c *Client) RedeemReward(ctx context.Context, rewardID, userID string) (int, error) {
	var out rewardDatamodel.Balance
	path := fmt.Sprintf("/rewards/%s/redeem", url.PathEscape(rewardID))
	if err := c.do(ctx, http.MethodPost, path, rewardDatamodel.RedeemRequest{UserID: userID}, &out); err != nil {
		return 0, err
	}
	return int(out), nil
}

func (c *Client) SubmitReport(ctx context.Context, req reportDatamodel.Request) (*reportDatamodel.Response, error) {
	var out reportDatamodel.Response
	if err := c.do(ctx, http.MethodPost, "/reports", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
