package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/natcap/ecoshard-services/models/service"
	"github.com/stretchr/testify/assert"
)

func TestWorkResultLifecycle(t *testing.T) {
	result := service.NewWorkResult("fetch-validate")
	assert.Equal(t, "fetch-validate", result.Operation)
	assert.False(t, result.Started())
	assert.False(t, result.Finished())
	assert.False(t, result.Succeeded())
	assert.Equal(t, time.Duration(0), result.RunTime())

	result.Start()
	assert.True(t, result.Started())
	assert.False(t, result.Succeeded())

	result.Finish()
	assert.True(t, result.Finished())
	assert.True(t, result.Succeeded())
	assert.True(t, result.RunTime() >= 0)
}

func TestWorkResultErrors(t *testing.T) {
	result := service.NewWorkResult("materialize-archive")
	result.Start()
	result.AddError(fmt.Errorf("transfer of x to y failed"))
	result.Finish()

	assert.True(t, result.HasErrors())
	assert.False(t, result.Succeeded())
	assert.Equal(t, 1, len(result.Errors))
}
