package cmd

import (
	"reflect"
	"testing"
)

func TestSplitAssets(t *testing.T) {
	testCases := []struct {
		list string
		want []string
	}{
		{"ETH", []string{"ETH"}},
		{"ETH,BTC,SOL", []string{"ETH", "BTC", "SOL"}},
		{" ETH , BTC ", []string{"ETH", "BTC"}},
		{"ETH,,BTC", []string{"ETH", "BTC"}},
		{"", nil},
	}
	for _, tc := range testCases {
		if got := splitAssets(tc.list); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitAssets(%q) = %v, want %v", tc.list, got, tc.want)
		}
	}
}
