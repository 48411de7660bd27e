package strscreen_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/saylorsolutions/strscreen/pkg/strscreen"
	"github.com/saylorsolutions/strscreen/pkg/strscreen/mocks"
)

func TestScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	emitter := mocks.NewMockEmitter(ctrl)

	provider.EXPECT().Entries().Return([]strscreen.Entry{
		{Name: "ApiKey", Plaintext: "secret123"},
		{Name: "Other", Plaintext: "secret123"},
	}, nil)
	gomock.InOrder(
		emitter.EXPECT().Emit(strscreen.Screened{
			Name: "ApiKey",
			Data: []byte{0x45, 0x99, 0xd2, 0x84, 0x9b, 0x9a, 0x27, 0x31, 0xf4},
			Key: strscreen.Key{
				0x3c, 0xae, 0xeb, 0xbf, 0xe8, 0xfc, 0x42, 0x44,
				0x9d, 0x8f, 0x82, 0xdc, 0xd5, 0xe6, 0x40, 0xfe,
			},
		}).Return(nil),
		emitter.EXPECT().Emit(gomock.Any()).DoAndReturn(func(s strscreen.Screened) error {
			assert.Equal(t, "Other", s.Name)
			assert.Equal(t, strscreen.DeriveKey("Other", strscreen.DefaultKeyLen), s.Key)
			assert.Equal(t, "secret123", strscreen.MustDecode(s.Data, s.Key))
			return nil
		}),
	)

	assert.NoError(t, strscreen.Screen(provider, emitter))
}

func TestScreen_KeyLength(t *testing.T) {
	var got []strscreen.Screened
	err := strscreen.Screen(
		strscreen.Entries{{Name: "ApiKey", Plaintext: "secret123"}},
		strscreen.EmitterFunc(func(s strscreen.Screened) error {
			got = append(got, s)
			return nil
		}),
		strscreen.KeyLength(4),
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, strscreen.Key{0x3c, 0xae, 0xeb, 0xbf}, got[0].Key)
	assert.Equal(t, "secret123", strscreen.MustDecode(got[0].Data, got[0].Key))

	err = strscreen.Screen(strscreen.Entries{}, strscreen.NewTable(), strscreen.KeyLength(0))
	assert.ErrorIs(t, err, strscreen.ErrInvalidKeyLength)
}

func TestScreen_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	emitter := mocks.NewMockEmitter(ctrl)

	failure := errors.New("read failure")
	provider.EXPECT().Entries().Return(nil, failure)

	err := strscreen.Screen(provider, emitter)
	assert.ErrorIs(t, err, failure)
}

func TestScreen_EmitterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	emitter := mocks.NewMockEmitter(ctrl)

	failure := errors.New("write failure")
	emitter.EXPECT().Emit(gomock.Any()).Return(failure).Times(1)

	err := strscreen.Screen(strscreen.Entries{
		{Name: "First", Plaintext: "1"},
		{Name: "Second", Plaintext: "2"},
	}, emitter)
	assert.ErrorIs(t, err, failure)
	assert.ErrorContains(t, err, "First")
}

func TestScreen_LogsWithoutPlaintext(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	err := strscreen.Screen(
		strscreen.Entries{{Name: "ApiKey", Plaintext: "secret123"}},
		strscreen.NewTable(),
		strscreen.WithLogger(log),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"name":"ApiKey"`)
	assert.NotContains(t, buf.String(), "secret123")
}

func TestScreenEntry(t *testing.T) {
	s, err := strscreen.ScreenEntry(strscreen.Entry{Name: "A", Plaintext: "B=C"}, strscreen.DefaultKeyLen)
	assert.NoError(t, err)
	assert.Equal(t, "A", s.Name)
	assert.Equal(t, []byte{0x40, 0x3c, 0xf3}, s.Data)

	_, err = strscreen.ScreenEntry(strscreen.Entry{Name: "A"}, -1)
	assert.ErrorIs(t, err, strscreen.ErrInvalidKeyLength)
}
