package links

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"linkstash/cmd/cli/config"
	"linkstash/cmd/cli/output"
	"linkstash/cmd/cli/root"
)

func init() {
	linksCmd := &cobra.Command{
		Use:   "links",
		Short: "Manage your bookmarked links",
	}

	linksCmd.AddCommand(addCmd(), listCmd(), deleteCmd())
	root.GetRoot().AddCommand(linksCmd)
}

func addCmd() *cobra.Command {
	var title, url string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Bookmark a new link",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" || url == "" {
				return fmt.Errorf("title and url are required")
			}

			payload := map[string]string{"title": title, "url": url}
			if err := callAPI(http.MethodPost, "/add_link", payload, nil); err != nil {
				return err
			}

			fmt.Println("Link added.")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Link title")
	cmd.Flags().StringVar(&url, "url", "", "Link URL")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your bookmarked links",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Links []struct {
					ID    int    `json:"id"`
					Title string `json:"title"`
					URL   string `json:"url"`
				} `json:"links"`
			}
			if err := callAPI(http.MethodGet, "/user_links", nil, &out); err != nil {
				return err
			}

			rows := make([][]interface{}, 0, len(out.Links))
			for _, l := range out.Links {
				rows = append(rows, []interface{}{l.ID, l.Title, l.URL})
			}
			output.RenderTable([]string{"ID", "Title", "URL"}, rows)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your links by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := callAPI(http.MethodDelete, "/delete_link/"+args[0], nil, nil); err != nil {
				return err
			}
			fmt.Println("Link deleted.")
			return nil
		},
	}
}

// callAPI performs an authenticated request against the Linkstash API using
// the locally stored token.
func callAPI(method, path string, payload interface{}, out interface{}) error {
	token, err := config.LoadToken()
	if err != nil {
		return fmt.Errorf("not logged in (run: linkstash login): %w", err)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, config.APIURL()+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		return json.Unmarshal(respBody, out)
	}
	return nil
}
