package health

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// State 源名 -> 连续失败次数。跨运行保存在 JSON 状态文件里，
// 这是整个系统唯一的跨运行状态。
type State map[string]int

// LoadState 读取状态文件；文件不存在或损坏时从零开始
func LoadState(path string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}
	}
	return s
}

// SaveState 写回状态文件，先写临时文件再改名，避免写坏
func SaveState(path string, s State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "health-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// SwapURL 在 JSON 源配置文件里用文本替换切换一个地址，保留原有排版。
// 用 JSON 转义后的串做精确匹配，同样先写临时文件再改名。
func SwapURL(configPath, oldURL, newURL string) (bool, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return false, err
	}

	oldJSON, err := json.Marshal(oldURL)
	if err != nil {
		return false, err
	}
	newJSON, err := json.Marshal(newURL)
	if err != nil {
		return false, err
	}

	text := string(raw)
	if !strings.Contains(text, string(oldJSON)) {
		return false, nil
	}
	text = strings.Replace(text, string(oldJSON), string(newJSON), 1)

	tmp, err := os.CreateTemp(filepath.Dir(configPath), "sources-*.tmp")
	if err != nil {
		return false, err
	}
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return false, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return false, err
	}
	if err := os.Rename(tmp.Name(), configPath); err != nil {
		return false, err
	}
	return true, nil
}
