package cli

import (
	"context"

	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
)

func (a *App) registerNotificationCommands() {
	a.add(&command{name: "notifications", aliases: []string{"inbox"}, route: navigation.RouteNotifications, help: "list notifications", screen: true, run: a.ListNotifications})
	a.add(&command{name: "unread", route: navigation.RouteNotifications, help: "refresh the unread count", run: a.Unread})
	a.add(&command{name: "read", route: navigation.RouteNotifications, usage: "<id|all>", help: "mark notifications as read", run: a.MarkRead})
	a.add(&command{name: "notification-delete", route: navigation.RouteNotifications, usage: "<id>", help: "delete a notification", run: a.DeleteNotification})
}

func (a *App) ListNotifications(ctx context.Context, _ []string) error {
	list, err := a.svc.Notifications.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No notifications")
		return nil
	}
	t := newTable(a.out, "ID", "", "WHEN", "TITLE", "MESSAGE")
	for _, n := range list {
		mark := "*"
		if n.IsRead {
			mark = ""
		}
		t.row(idStr(n.ID), mark, n.CreatedAt.Local().Format("2006-01-02 15:04"), n.Title, n.Message)
	}
	t.Flush()
	return nil
}

func (a *App) Unread(ctx context.Context, _ []string) error {
	n, err := a.poller.Refresh(ctx)
	if err != nil {
		return err
	}
	a.printf("%d unread notification(s)\n", n)
	return nil
}

func (a *App) MarkRead(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if args[0] == "all" {
		if err := a.svc.Notifications.MarkAllRead(ctx); err != nil {
			return err
		}
	} else {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := a.svc.Notifications.MarkRead(ctx, id); err != nil {
			return err
		}
	}
	a.refreshUnread(ctx)
	return nil
}

func (a *App) DeleteNotification(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.svc.Notifications.Delete(ctx, id); err != nil {
		return err
	}
	a.refreshUnread(ctx)
	return nil
}

// refreshUnread updates the prompt badge after a change to the inbox.
func (a *App) refreshUnread(ctx context.Context) {
	if _, err := a.poller.Refresh(ctx); err != nil && ctx.Err() == nil {
		a.log.Warn(ctx, "unread badge refresh failed", "error", err)
	}
}
