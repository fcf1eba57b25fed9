package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFocusManagerRotation(t *testing.T) {
	f := &FocusManager{Current: "body", Order: []string{"body", "menu"}}

	require.Equal(t, "menu", f.Next())
	require.Equal(t, "body", f.Next())
	require.Equal(t, "menu", f.Prev())
	require.Equal(t, "body", f.Prev())
}

func TestFocusManagerSetFocus(t *testing.T) {
	f := &FocusManager{Current: "body", Order: []string{"body", "menu"}}

	require.True(t, f.SetFocus("menu"))
	require.Equal(t, "menu", f.Current)

	require.False(t, f.SetFocus("nope"))
	require.Equal(t, "menu", f.Current, "unknown IDs leave focus untouched")
}

func TestFocusManagerOnChange(t *testing.T) {
	var got [][2]string
	f := &FocusManager{
		Current:  "body",
		Order:    []string{"body", "menu"},
		OnChange: func(from, to string) { got = append(got, [2]string{from, to}) },
	}

	f.Next()
	f.SetFocus("menu") // already focused, no event
	f.SetFocus("body")

	require.Equal(t, [][2]string{{"body", "menu"}, {"menu", "body"}}, got)
}

func TestFocusManagerEmptyOrder(t *testing.T) {
	f := &FocusManager{}
	require.Equal(t, "", f.Next())
	require.False(t, f.SetFocus("menu"))
}
