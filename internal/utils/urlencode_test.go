package utils

import "testing"

func TestURLEncodeFull(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{
			"http://buildbot.libretro.com/nightly/linux/x86_64/latest/snes9x_libretro.so.zip",
			"http://buildbot.libretro.com/nightly/linux/x86_64/latest/snes9x_libretro.so.zip",
		},
		{
			"http://host/dir/a b+c.zip",
			"http://host/dir/a%20b%2Bc.zip",
		},
		{
			"https://host:8080/a?b=c&d",
			"https://host:8080/a%3Fb%3Dc%26d",
		},
		{
			"http://host",
			"http://host",
		},
		{
			"no scheme/é",
			"no%20scheme/%C3%A9",
		},
		{
			"http://host/*-._~",
			"http://host/*-._%7E",
		},
	}

	for _, tt := range tests {
		if got := URLEncodeFull(tt.in); got != tt.want {
			t.Errorf("URLEncodeFull(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
