package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Init("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Init("loud")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
