package shell

// Scripts skip commands that invoke parrot itself so that `record stop`
// does not end up inside the recording it stops.

const fishScript = `# parrot shell integration for fish
# Add to ~/.config/fish/config.fish:
#   {{parrot}} init fish | source

function __parrot_record --on-event fish_postexec
    set -l cmd (string trim -- $argv[1])
    test -n "$cmd"; or return
    string match -qr '^(\S*/)?{{parrot}}(\s|$)' -- $cmd; and return
    command {{parrot}} record add -- $cmd >/dev/null 2>&1
end
`

const bashScript = `# parrot shell integration for bash
# Add to ~/.bashrc:
#   eval "$({{parrot}} init bash)"

__parrot_histnum() {
  HISTTIMEFORMAT= builtin history 1 | sed -e 's/^ *\([0-9]*\).*/\1/'
}

# Seeded at load time so the previous session's last entry is not recorded.
__parrot_last_histnum=$(__parrot_histnum)

__parrot_record() {
  local entry num cmd
  entry=$(HISTTIMEFORMAT= builtin history 1)
  [ -n "$entry" ] || return
  num=$(printf '%s\n' "$entry" | sed -e 's/^ *\([0-9]*\).*/\1/')
  cmd=$(printf '%s\n' "$entry" | sed -e 's/^ *[0-9]* *//')
  # Same history number means no new command was run at this prompt.
  [ "$num" = "$__parrot_last_histnum" ] && return
  __parrot_last_histnum="$num"
  [ -n "$cmd" ] || return
  case "$cmd" in
    {{parrot}}|{{parrot}}\ *|*/{{parrot}}|*/{{parrot}}\ *) return ;;
  esac
  command {{parrot}} record add -- "$cmd" >/dev/null 2>&1
}

case ";${PROMPT_COMMAND:-};" in
  *";__parrot_record;"*) ;;
  *) PROMPT_COMMAND="__parrot_record${PROMPT_COMMAND:+;$PROMPT_COMMAND}" ;;
esac
`

const zshScript = `# parrot shell integration for zsh
# Add to ~/.zshrc:
#   eval "$({{parrot}} init zsh)"

_parrot_preexec() {
  local cmd="$1"
  [[ -n "$cmd" ]] || return
  [[ "$cmd" =~ '^[[:space:]]*(.*/)?{{parrot}}([[:space:]]|$)' ]] && return
  command {{parrot}} record add -- "$cmd" >/dev/null 2>&1
}

autoload -Uz add-zsh-hook
add-zsh-hook preexec _parrot_preexec
`
