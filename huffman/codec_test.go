package huffman_test

import (
	"sync"
	"testing"

	"github.com/forestrie/go-huffman/huffman"
	"github.com/forestrie/go-huffman/huffmantesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodecErrors(t *testing.T) {
	_, err := huffman.NewCodec(huffman.FrequencyTable[byte]{})
	require.ErrorIs(t, err, huffman.ErrEmptyInput)

	_, _, err = huffman.Compress([]byte{})
	require.ErrorIs(t, err, huffman.ErrEmptyInput)
}

func TestCodecAccessorsReturnCopies(t *testing.T) {
	c, err := huffman.NewCodec(huffman.CountRunes("abracadabra"))
	require.NoError(t, err)

	freqs := c.Frequencies()
	freqs['a'] = 1000
	assert.Equal(t, uint64(5), c.Frequencies()['a'])

	codes := c.Codes()
	delete(codes, 'a')
	_, ok := c.Code('a')
	assert.True(t, ok)

	_, ok = c.Code('z')
	assert.False(t, ok)
}

func TestCodecCodesDoNotShareStorage(t *testing.T) {
	c, err := huffman.NewCodec(huffman.CountRunes("ab"))
	require.NoError(t, err)
	code, ok := c.Code('a')
	require.True(t, ok)
	require.Equal(t, "0", code.String())

	before, err := c.Encode([]rune("aa"))
	require.NoError(t, err)
	require.Equal(t, "00", before.String())

	fromTable := c.Codes()['a']
	fromTable.AppendBit(1)
	code.AppendBit(1)
	assert.Equal(t, "01", fromTable.String())

	after, err := c.Encode([]rune("aa"))
	require.NoError(t, err)
	assert.True(t, before.Equal(after), "encoding changed to %s", after)

	decoded, err := c.Decode(after)
	require.NoError(t, err)
	assert.Equal(t, "aa", string(decoded))

	again, _ := c.Code('a')
	assert.Equal(t, "0", again.String())
}

func TestCodecMetrics(t *testing.T) {
	text := "abracadabra"
	c, encoded, err := huffman.Compress([]rune(text))
	require.NoError(t, err)

	assert.Equal(t, uint64(encoded.Len()), c.EncodedLen())
	assert.Equal(t, c.EncodedLen(), c.WeightedPathLength())
	assert.Equal(t, uint64(len(text)), c.Root().Weight())

	leaves := huffman.Leaves(c.Root())
	assert.Len(t, leaves, 5)
	var sum uint64
	for _, l := range leaves {
		sum += l.Freq
	}
	assert.Equal(t, uint64(len(text)), sum)
}

func TestCodecConcurrentUse(t *testing.T) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{
		Seed: 99, TestLabelPrefix: "TestCodecConcurrentUse"})

	input := []byte(huffmantesting.GenerateText(tc.Rand(), 2000, huffmantesting.LowerAlphabet))
	c, want, err := huffman.Compress(input)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Encode(input)
			if err != nil {
				errs <- err
				return
			}
			if !got.Equal(want) {
				errs <- huffman.ErrMalformedBitstream
				return
			}
			if _, err := c.Decode(got); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
