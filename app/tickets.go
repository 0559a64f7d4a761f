package app

import (
	"context"

	"kino-cli/account"
	"kino-cli/service"
	"kino-cli/ticket"
)

// ShowQR downloads a booking's QR code into the viewer, replacing any code
// already open.
func (a *App) ShowQR(ctx context.Context, bookingID int64) error {
	token := a.Account.Token()
	if token == "" {
		a.Flash.Error(a.Translator().T("flash_login_required"))
		return account.ErrNotAuthenticated
	}
	blob, err := a.API.BookingQR(ctx, token, bookingID)
	if err != nil {
		a.Flash.Error(service.Message(err, a.Translator().T("flash_qr_failed")))
		return err
	}
	a.QR.Open(bookingID, blob)
	return nil
}

// DownloadTicket saves the booking's PDF into the download directory.
func (a *App) DownloadTicket(ctx context.Context, bookingID int64) (string, error) {
	token := a.Account.Token()
	if token == "" {
		a.Flash.Error(a.Translator().T("flash_login_required"))
		return "", account.ErrNotAuthenticated
	}
	blob, err := a.API.BookingTicket(ctx, token, bookingID)
	if err != nil {
		a.Flash.Error(service.Message(err, a.Translator().T("flash_ticket_failed")))
		return "", err
	}
	path, err := ticket.SaveTicket(a.Config.DownloadDir, bookingID, blob)
	if err != nil {
		a.Flash.Error(a.Translator().T("flash_ticket_failed"))
		return "", err
	}
	a.Flash.Success(a.Translator().T("flash_ticket_saved") + " " + path)
	return path, nil
}
