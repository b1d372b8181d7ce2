package workflow

import (
	"fmt"
	"time"
)

// BannerKind distinguishes the two submission outcomes.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerFailure BannerKind = "failure"
)

// How long each banner stays on screen.
const (
	SuccessBannerTTL = 2000 * time.Millisecond
	FailureBannerTTL = 3000 * time.Millisecond
)

// OfflineNotice is shown under the list when the feed could not be fetched.
const OfflineNotice = "webserver not available - offline mode"

// Banner is a transient message reporting how a submission went.
type Banner struct {
	Kind BannerKind
	Text string
	TTL  time.Duration
}

func successBanner(title string) Banner {
	return Banner{
		Kind: BannerSuccess,
		Text: fmt.Sprintf("Success! The link '%s' has been successfully added!", title),
		TTL:  SuccessBannerTTL,
	}
}

func failureBanner(title string) Banner {
	return Banner{
		Kind: BannerFailure,
		Text: fmt.Sprintf("Failed! The link '%s' could not be added to the server - please check your Internet connection...", title),
		TTL:  FailureBannerTTL,
	}
}
