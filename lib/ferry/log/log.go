package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is shared by every ferry package. The entry point configures its
// level and output.
var Logger = logrus.New()
