package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	cryptoService "github.com/allisson/bankvault/internal/crypto/service"
)

const kmsProbePlaintext = "bankvault-kms-probe"

type kmsKeyOutput struct {
	KMSKeyURI string `json:"kms_key_uri"`
	Verified  bool   `json:"verified"`
}

// RunCreateKMSKey prints a KMS_KEY_URI for sealing device keys in the primary store.
// With an empty kmsKeyURI it generates a local base64key:// key for development. With
// a URI it opens the keeper and checks that an encrypt/decrypt round trip succeeds.
func RunCreateKMSKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	w io.Writer,
	kmsKeyURI string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	out := kmsKeyOutput{KMSKeyURI: kmsKeyURI}
	if kmsKeyURI == "" {
		uri, err := kmsService.GenerateLocalKeyURI()
		if err != nil {
			return err
		}
		out.KMSKeyURI = uri
		logger.Info("generated local KMS key")
	} else {
		if err := verifyKeeper(ctx, kmsService, logger, kmsKeyURI); err != nil {
			return err
		}
		out.Verified = true
		logger.Info("KMS key verified")
	}

	if format == FormatJSON {
		return writeJSON(w, out)
	}

	if strings.HasPrefix(out.KMSKeyURI, cryptoService.LocalKeyScheme) {
		_, _ = fmt.Fprintln(w, "# Local KMS key. Never use base64key:// in production.")
	}
	_, _ = fmt.Fprintln(w, "# Copy this environment variable to your .env file or secrets manager")
	_, err := fmt.Fprintf(w, "KMS_KEY_URI=\"%s\"\n", out.KMSKeyURI)
	return err
}

func verifyKeeper(ctx context.Context, kmsService cryptoService.KMSService, logger *slog.Logger, uri string) error {
	keeper, err := kmsService.OpenKeeper(ctx, uri)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, []byte(kmsProbePlaintext))
	if err != nil {
		return fmt.Errorf("failed to encrypt with KMS key: %w", err)
	}
	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return fmt.Errorf("failed to decrypt with KMS key: %w", err)
	}
	if string(plaintext) != kmsProbePlaintext {
		return errors.New("KMS key round trip returned unexpected plaintext")
	}
	return nil
}
